package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks

// ErrConsumerStopped is returned by Run when the consumer ends before ctx is done.
var ErrConsumerStopped = errors.New("consumer stopped")

type notificationConsumer interface {
	Consume(ctx context.Context, out chan<- queue.Delivery) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.Delivery, strategy retry.Strategy)
}

type Notifier struct {
	queue   notificationConsumer
	handler messageHandler
}

func NewNotifier(q notificationConsumer, h messageHandler) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
	}
}

// Run handles messages one at a time until ctx is done or the consumer stops.
//
// A message already handed to the handler is processed to the end even if ctx is
// cancelled meanwhile.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy) error {
	msgChan := make(chan queue.Delivery)
	consumeErr := make(chan error, 1)

	go func() {
		consumeErr <- n.queue.Consume(ctx, msgChan)
	}()

	zlog.Logger.Print("notifier started")

	for {
		select {
		case <-ctx.Done():
			return stopped(<-consumeErr)
		case err := <-consumeErr:
			if ctx.Err() != nil {
				return stopped(err)
			}

			if err == nil {
				return ErrConsumerStopped
			}

			return fmt.Errorf("%w: %w", ErrConsumerStopped, err)
		case msg := <-msgChan:
			n.handler.HandleMessage(context.WithoutCancel(ctx), msg, strategy)
		}
	}
}

func stopped(consumeErr error) error {
	if consumeErr != nil {
		zlog.Logger.Error().Err(consumeErr).Msg("consumer stopped with error")
	}

	zlog.Logger.Print("notifier stopped")
	return nil
}

package queue

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/config"
)

// ErrDeliveriesClosed is returned by Consume when the broker closes the delivery stream.
var ErrDeliveriesClosed = errors.New("delivery channel closed by broker")

// Delivery is a single message received from the queue.
type Delivery struct {
	Key  string // notification ID the message was published with
	Body []byte
}

// amqpChannel is the part of the AMQP channel used for keyed publishing and consuming.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
}

// NotificationQueue publishes notifications keyed by their ID and consumes them
// from the shared worker queue.
type NotificationQueue struct {
	ch          amqpChannel
	exchange    string
	queue       string
	routingKey  string
	consumerTag string
}

// NewNotificationQueue declares the exchange and the durable worker queue and binds them.
func NewNotificationQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*NotificationQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	q, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare worker queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the worker queue: %w", err)
	}

	return newQueue(ch, exchange.Name(), q.Name, cfg.RoutingKey, cfg.ConsumerTag), nil
}

func newQueue(ch amqpChannel, exchange, queue, routingKey, consumerTag string) *NotificationQueue {
	return &NotificationQueue{
		ch:          ch,
		exchange:    exchange,
		queue:       queue,
		routingKey:  routingKey,
		consumerTag: consumerTag,
	}
}

// Publish sends the payload to the exchange. The key travels as the message ID.
func (q *NotificationQueue) Publish(ctx context.Context, key string, payload []byte) error {
	err := q.ch.PublishWithContext(ctx, q.exchange, q.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    key,
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message %s: %w", key, err)
	}

	return nil
}

// Consume forwards deliveries to out until ctx is done or the broker closes the stream.
//
// Messages are acknowledged on receipt, so work lost after a crash is not redelivered.
func (q *NotificationQueue) Consume(ctx context.Context, out chan<- Delivery) error {
	deliveries, err := q.ch.Consume(q.queue, q.consumerTag, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming %s: %w", q.queue, err)
	}

	zlog.Logger.Info().Str("queue", q.queue).Msg("consuming notifications")

	for {
		select {
		case <-ctx.Done():
			return q.cancel()
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}

			select {
			case out <- Delivery{Key: d.MessageId, Body: d.Body}:
			case <-ctx.Done():
				return q.cancel()
			}
		}
	}
}

func (q *NotificationQueue) cancel() error {
	if err := q.ch.Cancel(q.consumerTag, false); err != nil {
		return fmt.Errorf("failed to cancel consumer %s: %w", q.consumerTag, err)
	}

	return nil
}

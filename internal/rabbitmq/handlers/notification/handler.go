package notification

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/channel"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type notificationService interface {
	UpdateChannelStatus(ctx context.Context, strategy retry.Strategy, id, channel string, value model.ChannelStatus) error
}

type senderRegistry interface {
	Lookup(name string) (channel.Sender, bool)
}

// Handler delivers one dequeued notification over each of its channels.
type Handler struct {
	service  notificationService
	registry senderRegistry
}

func NewHandler(svc notificationService, registry senderRegistry) *Handler {
	return &Handler{
		service:  svc,
		registry: registry,
	}
}

// HandleMessage processes channels in request order and recipients in request order.
// A channel is COMPLETED only if every recipient send succeeded.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.Delivery, strategy retry.Strategy) {
	var req model.NotificationRequest
	if err := json.Unmarshal(msg.Body, &req); err != nil {
		zlog.Logger.Error().Err(err).Str("id", msg.Key).Msg("failed to decode notification, dropping message")
		return
	}

	zlog.Logger.Info().Str("id", msg.Key).Strs("channels", req.Channels).Msg("processing notification")

	for _, name := range req.Channels {
		h.setStatus(ctx, strategy, msg.Key, name, model.ChannelProcessing)

		sender, ok := h.registry.Lookup(name)
		if !ok {
			zlog.Logger.Warn().Str("id", msg.Key).Str("channel", name).Msg("no adapter registered for channel")
			h.setStatus(ctx, strategy, msg.Key, name, model.ChannelFailed)
			continue
		}

		result := model.ChannelCompleted
		for _, to := range req.RecipientIDs {
			if err := sender.Send(to, req.Message); err != nil {
				zlog.Logger.Error().
					Err(err).
					Str("id", msg.Key).
					Str("channel", name).
					Str("recipient", to).
					Msg("failed to send notification")
				result = model.ChannelFailed
			}
		}

		h.setStatus(ctx, strategy, msg.Key, name, result)
	}

	zlog.Logger.Info().Str("id", msg.Key).Msg("notification processed")
}

func (h *Handler) setStatus(ctx context.Context, strategy retry.Strategy, id, name string, value model.ChannelStatus) {
	if err := h.service.UpdateChannelStatus(ctx, strategy, id, name, value); err != nil {
		zlog.Logger.Error().
			Err(err).
			Str("id", id).
			Str("channel", name).
			Str("status", string(value)).
			Msg("failed to set channel status")
	}
}

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/api/dto"
	"github.com/aliskhannn/notification-dispatcher/internal/api/respond"
	"github.com/aliskhannn/notification-dispatcher/internal/config"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
)

// notificationService defines the interface that the Handler depends on.
//
// It abstracts enqueueing notifications, reading and updating their status,
// and computing delivery metrics.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Enqueue(ctx context.Context, req model.NotificationRequest) (string, error)
	GetStatus(ctx context.Context, strategy retry.Strategy, id string) (model.NotificationStatus, error)
	UpdateChannelStatus(ctx context.Context, strategy retry.Strategy, id, channel string, value model.ChannelStatus) error
	GetMetrics(ctx context.Context) (model.NotificationMetrics, error)
}

// Handler handles HTTP requests related to notifications.
//
// It provides endpoints for enqueueing notifications, checking their status,
// reading metrics, and receiving delivery callbacks from providers.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
//
// Parameters:
//   - s: implementation of notificationService
//   - v: validator instance for request validation
//   - cfg: configuration instance
func NewHandler(
	s notificationService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Notify handles HTTP POST requests to enqueue a notification.
//
// It validates the request body, hands the request to the service and returns
// the notification ID without waiting for delivery.
func (h *Handler) Notify(c *ginext.Context) {
	var req dto.NotifyRequest

	// Decode JSON request body into dto.NotifyRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	// Validate request fields using go-playground/validator.
	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	notification := model.NotificationRequest{
		Channels:     req.Channels,
		RecipientIDs: req.RecipientIDs,
		Message:      req.Message,
		Metadata:     req.Metadata,
	}

	id, err := h.service.Enqueue(c.Request.Context(), notification)
	if err != nil {
		zlog.Logger.Error().Err(err).Strs("channels", req.Channels).Msg("failed to enqueue notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Accepted(c.Writer, dto.NotifyResponse{NotificationID: id, Status: "enqueued"})
}

// GetStatus handles HTTP GET requests to retrieve the status of a notification.
//
// It expects the notification ID as a URL parameter and returns the full status record.
func (h *Handler) GetStatus(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	s, err := h.service.GetStatus(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, status.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		// Internal server error.
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, s)
}

// GetMetrics handles HTTP GET requests for delivery metrics over all notifications.
func (h *Handler) GetMetrics(c *ginext.Context) {
	m, err := h.service.GetMetrics(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get metrics")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, m)
}

// Webhook handles delivery callbacks that set the status of one channel.
//
// Callbacks for unknown notifications or channels are acknowledged like any other.
func (h *Handler) Webhook(c *ginext.Context) {
	var req dto.WebhookRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode webhook body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	// Providers are not consistent about case.
	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate webhook body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	err := h.service.UpdateChannelStatus(
		c.Request.Context(), h.cfg.Retry, req.NotificationID, req.Channel, model.ChannelStatus(req.Status),
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", req.NotificationID).Msg("failed to apply webhook callback")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.StatusResponse{Status: "updated"})
}

// Health reports that the process is serving requests.
func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, dto.StatusResponse{Status: "ok"})
}

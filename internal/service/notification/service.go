package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/cache"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type statusRepository interface {
	CreateInitial(ctx context.Context, id string, channels []string) error
	UpdateChannel(ctx context.Context, id, channel string, value model.ChannelStatus) (model.NotificationStatus, error)
	GetByID(ctx context.Context, id string) (model.NotificationStatus, error)
	CountByStatus(ctx context.Context) (map[model.OverallStatus]int64, error)
}

type notificationPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

type statusCache interface {
	Get(ctx context.Context, strategy retry.Strategy, id string) (model.NotificationStatus, error)
	Set(ctx context.Context, strategy retry.Strategy, s model.NotificationStatus) error
	Invalidate(ctx context.Context, id string) error
}

type Service struct {
	repo  statusRepository
	queue notificationPublisher
	cache statusCache
	newID func() string
}

func NewService(repo statusRepository, queue notificationPublisher) *Service {
	return &Service{repo: repo, queue: queue, newID: uuid.NewString}
}

// WithCache enables the read-through status cache.
func (s *Service) WithCache(c statusCache) *Service {
	s.cache = c
	return s
}

// Enqueue seeds the status record and publishes the request keyed by a fresh ID.
//
// A failure to seed the record is logged and does not stop the publish. The ID is
// returned only if the publish succeeds.
func (s *Service) Enqueue(ctx context.Context, req model.NotificationRequest) (string, error) {
	id := s.newID()

	if err := s.repo.CreateInitial(ctx, id, req.Channels); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to create initial status")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal notification request: %w", err)
	}

	if err := s.queue.Publish(ctx, id, payload); err != nil {
		return "", fmt.Errorf("publish notification: %w", err)
	}

	zlog.Logger.Info().Str("id", id).Strs("channels", req.Channels).Msg("notification enqueued")

	return id, nil
}

// GetStatus returns the current status, reading the cache first when it is enabled.
func (s *Service) GetStatus(ctx context.Context, strategy retry.Strategy, id string) (model.NotificationStatus, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, strategy, id)
		if err == nil {
			return cached, nil
		}

		if !errors.Is(err, cache.ErrMiss) {
			zlog.Logger.Warn().Err(err).Str("id", id).Msg("failed to get notification status from cache")
		}
	}

	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.NotificationStatus{}, fmt.Errorf("get notification status: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, strategy, st); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to cache notification status")
		}
	}

	return st, nil
}

// UpdateChannelStatus sets one channel of a notification and recomputes the overall status.
//
// Unknown notifications and channels are ignored.
func (s *Service) UpdateChannelStatus(
	ctx context.Context, strategy retry.Strategy, id, channel string, value model.ChannelStatus,
) error {
	st, err := s.repo.UpdateChannel(ctx, id, channel, value)
	if err != nil {
		if errors.Is(err, status.ErrNotificationNotFound) || errors.Is(err, status.ErrChannelNotFound) {
			zlog.Logger.Warn().Err(err).Str("id", id).Str("channel", channel).Msg("status update ignored")
			return nil
		}

		return fmt.Errorf("update channel status: %w", err)
	}

	zlog.Logger.Info().
		Str("id", id).
		Str("channel", channel).
		Str("channel_status", string(value)).
		Str("overall_status", string(st.Status)).
		Msg("channel status updated")

	if s.cache != nil {
		err := retry.Do(func() error {
			return s.cache.Invalidate(ctx, id)
		}, strategy)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to invalidate cached status")
		}
	}

	return nil
}

// GetMetrics rolls up the per-status record counts.
func (s *Service) GetMetrics(ctx context.Context) (model.NotificationMetrics, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return model.NotificationMetrics{}, fmt.Errorf("count notification statuses: %w", err)
	}

	return model.NewMetrics(counts), nil
}

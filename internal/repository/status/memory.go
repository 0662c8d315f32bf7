package status

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

// MemoryRepository keeps statuses in process memory. It has the same semantics as
// Repository and is used when no database is configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	statuses map[string]model.NotificationStatus
	now      func() time.Time
}

// NewMemoryRepository creates an empty in-memory status repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		statuses: make(map[string]model.NotificationStatus),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) CreateInitial(_ context.Context, id string, channels []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.statuses[id]; exists {
		return ErrDuplicateNotification
	}

	r.statuses[id] = model.NewNotificationStatus(id, channels, r.now())
	return nil
}

func (r *MemoryRepository) UpdateChannel(
	_ context.Context, id, channel string, value model.ChannelStatus,
) (model.NotificationStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, exists := r.statuses[id]
	if !exists {
		return model.NotificationStatus{}, ErrNotificationNotFound
	}

	s = clone(s)
	if !s.SetChannel(channel, value, r.now()) {
		return model.NotificationStatus{}, ErrChannelNotFound
	}

	r.statuses[id] = s
	return clone(s), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (model.NotificationStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.statuses[id]
	if !exists {
		return model.NotificationStatus{}, ErrNotificationNotFound
	}

	return clone(s), nil
}

func (r *MemoryRepository) CountByStatus(_ context.Context) (map[model.OverallStatus]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[model.OverallStatus]int64)
	for _, s := range r.statuses {
		counts[s.Status]++
	}

	return counts, nil
}

// clone copies the channel map so callers never share it with the store.
func clone(s model.NotificationStatus) model.NotificationStatus {
	s.ChannelStatuses = maps.Clone(s.ChannelStatuses)
	return s
}

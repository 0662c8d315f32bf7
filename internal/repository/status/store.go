package status

import (
	"context"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

// Store is the set of status operations both repositories provide.
type Store interface {
	CreateInitial(ctx context.Context, id string, channels []string) error
	UpdateChannel(ctx context.Context, id, channel string, value model.ChannelStatus) (model.NotificationStatus, error)
	GetByID(ctx context.Context, id string) (model.NotificationStatus, error)
	CountByStatus(ctx context.Context) (map[model.OverallStatus]int64, error)
}

var (
	_ Store = (*Repository)(nil)
	_ Store = (*MemoryRepository)(nil)
)

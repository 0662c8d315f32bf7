package status

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.CreateInitial(ctx, "id-1", []string{"email", "sms"}))

	s, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, model.OverallEnqueued, s.Status)
	assert.Equal(t, map[string]model.ChannelStatus{
		"email": model.ChannelPending,
		"sms":   model.ChannelPending,
	}, s.ChannelStatuses)

	assert.ErrorIs(t, repo.CreateInitial(ctx, "id-1", []string{"push"}), ErrDuplicateNotification)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMemoryRepository_UpdateChannel(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.CreateInitial(ctx, "id-1", []string{"email", "sms"}))

	s, err := repo.UpdateChannel(ctx, "id-1", "email", model.ChannelCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.OverallProcessing, s.Status)

	// the returned copy must not alias the stored record
	s.ChannelStatuses["email"] = model.ChannelFailed

	stored, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, model.ChannelCompleted, stored.ChannelStatuses["email"])

	_, err = repo.UpdateChannel(ctx, "missing", "email", model.ChannelCompleted)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	_, err = repo.UpdateChannel(ctx, "id-1", "voice", model.ChannelCompleted)
	assert.ErrorIs(t, err, ErrChannelNotFound)

	stored, err = repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Len(t, stored.ChannelStatuses, 2)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[model.OverallStatus]int64{model.OverallProcessing: 1}, counts)
}

func TestMemoryRepository_ConcurrentChannelUpdates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	channels := make([]string, 50)
	for i := range channels {
		channels[i] = fmt.Sprintf("ch-%d", i)
	}
	require.NoError(t, repo.CreateInitial(ctx, "id-1", channels))

	var wg sync.WaitGroup
	for _, ch := range channels {
		wg.Add(1)
		go func(ch string) {
			defer wg.Done()
			_, err := repo.UpdateChannel(ctx, "id-1", ch, model.ChannelCompleted)
			assert.NoError(t, err)
		}(ch)
	}
	wg.Wait()

	s, err := repo.GetByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, model.OverallCompleted, s.Status)
	for _, ch := range channels {
		assert.Equal(t, model.ChannelCompleted, s.ChannelStatuses[ch], ch)
	}
}

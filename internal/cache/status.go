package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

// ErrMiss is returned when the status is not cached.
var ErrMiss = errors.New("status not cached")

const keyPrefix = "notification:status:"

// client is the subset of go-redis commands the cache needs. main passes the
// go-redis client embedded in the wbf wrapper, whose own Set takes no expiration.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// StatusCache keeps read-through copies of notification statuses in redis.
type StatusCache struct {
	rdb client
	ttl time.Duration
}

// NewStatusCache creates a cache whose entries expire after ttl.
func NewStatusCache(rdb client, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Get returns the cached status or ErrMiss.
// Only transport errors are retried; a miss returns after one round trip.
func (c *StatusCache) Get(ctx context.Context, strategy retry.Strategy, id string) (model.NotificationStatus, error) {
	var (
		raw  string
		miss bool
	)

	err := retry.Do(func() error {
		v, err := c.rdb.Get(ctx, key(id)).Result()
		if errors.Is(err, redis.Nil) {
			miss = true
			return nil
		}
		if err != nil {
			return err
		}

		raw = v
		return nil
	}, strategy)
	if err != nil {
		return model.NotificationStatus{}, fmt.Errorf("get cached status: %w", err)
	}

	if miss {
		return model.NotificationStatus{}, ErrMiss
	}

	var s model.NotificationStatus
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.NotificationStatus{}, fmt.Errorf("unmarshal cached status: %w", err)
	}

	return s, nil
}

// Set stores the status under its notification ID.
func (c *StatusCache) Set(ctx context.Context, strategy retry.Strategy, s model.NotificationStatus) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}

	err = retry.Do(func() error {
		return c.rdb.Set(ctx, key(s.NotificationID), data, c.ttl).Err()
	}, strategy)
	if err != nil {
		return fmt.Errorf("cache status: %w", err)
	}

	return nil
}

// Invalidate drops the cached status so the next read goes to the store.
func (c *StatusCache) Invalidate(ctx context.Context, id string) error {
	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("invalidate cached status: %w", err)
	}

	return nil
}

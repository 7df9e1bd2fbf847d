// Package cache implements the cache invalidation adapter on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lifehub/backend/internal/application/adapter"
)

// redisInvalidator implements adapter.CacheInvalidator with per-group version
// counters. Invalidating a group bumps its counter; read clients embed the
// counter in their cache keys, so stale entries simply stop being addressed.
type redisInvalidator struct {
	client *redis.Client
}

// NewRedisInvalidator creates a new cache invalidator backed by Redis.
func NewRedisInvalidator(client *redis.Client) adapter.CacheInvalidator {
	return &redisInvalidator{
		client: client,
	}
}

// Invalidate bumps the version counter of each group for the user.
func (c *redisInvalidator) Invalidate(ctx context.Context, userID uuid.UUID, groups ...adapter.CacheGroup) error {
	pipe := c.client.Pipeline()
	for _, group := range groups {
		pipe.Incr(ctx, versionKey(userID, group))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump cache versions: %w", err)
	}
	return nil
}

// Version returns the current version counter of a group for a user. A group
// that was never invalidated reports version 0.
func (c *redisInvalidator) Version(ctx context.Context, userID uuid.UUID, group adapter.CacheGroup) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID, group)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return version, nil
}

func versionKey(userID uuid.UUID, group adapter.CacheGroup) string {
	return fmt.Sprintf("cache:v:%s:%s", userID, group)
}

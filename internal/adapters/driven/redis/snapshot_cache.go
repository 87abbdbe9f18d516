package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/crately/crately-core/internal/core/ports/driven"
	"github.com/redis/go-redis/v9"
)

// Verify interface compliance
var _ driven.SnapshotCache = (*SnapshotCache)(nil)

const cachePrefix = "cache:"

// SnapshotCache implements driven.SnapshotCache using Redis.
// Entries expire via Redis TTL; mutating services invalidate eagerly.
type SnapshotCache struct {
	client *redis.Client
}

// NewSnapshotCache creates a new Redis-backed SnapshotCache
func NewSnapshotCache(client *redis.Client) *SnapshotCache {
	return &SnapshotCache{client: client}
}

// Get retrieves a cached entry. The second return value reports
// whether the key was present.
func (c *SnapshotCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, cachePrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return data, true, nil
}

// Set stores an entry with the given TTL
func (c *SnapshotCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, cachePrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}
	return nil
}

// Invalidate removes the given keys
func (c *SnapshotCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = cachePrefix + key
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache entries: %w", err)
	}
	return nil
}

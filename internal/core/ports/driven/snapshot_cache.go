package driven

import (
	"context"
	"time"
)

// SnapshotCache holds short-lived serialized record snapshots so repeated
// searches against an unchanged inventory skip the database round trip.
// Mutations must invalidate; a stale snapshot must never outlive a change to
// the underlying collection. Optional: services tolerate a nil cache.
type SnapshotCache interface {
	// Get retrieves a cached snapshot; ok is false on a miss
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores a snapshot with a TTL
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Invalidate drops the given snapshot keys
	Invalidate(ctx context.Context, keys ...string) error
}

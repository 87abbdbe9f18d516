package mocks

import (
	"context"
	"sync"
	"time"
)

// MockSnapshotCache is an in-memory SnapshotCache for testing. TTLs are
// ignored; Invalidations counts explicit drops so tests can assert that
// mutations bust the snapshot.
type MockSnapshotCache struct {
	mu            sync.RWMutex
	entries       map[string][]byte
	Invalidations int
}

// NewMockSnapshotCache creates a new MockSnapshotCache
func NewMockSnapshotCache() *MockSnapshotCache {
	return &MockSnapshotCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockSnapshotCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.entries[key]
	return data, ok, nil
}

func (m *MockSnapshotCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.Invalidations++
	return nil
}

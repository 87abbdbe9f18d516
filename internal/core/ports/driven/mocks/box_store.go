package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/crately/crately-core/internal/core/domain"
)

// MockBoxStore is a mock implementation of BoxStore for testing
type MockBoxStore struct {
	mu    sync.RWMutex
	boxes map[string]*domain.Box
	order []string // Creation order
}

// NewMockBoxStore creates a new MockBoxStore
func NewMockBoxStore() *MockBoxStore {
	return &MockBoxStore{
		boxes: make(map[string]*domain.Box),
	}
}

func (m *MockBoxStore) Save(ctx context.Context, box *domain.Box) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boxes[box.ID]; !ok {
		m.order = append(m.order, box.ID)
	}
	cp := *box
	m.boxes[box.ID] = &cp
	return nil
}

func (m *MockBoxStore) Get(ctx context.Context, id string) (*domain.Box, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	box, ok := m.boxes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *box
	return &cp, nil
}

func (m *MockBoxStore) List(ctx context.Context, filter domain.BoxFilter) ([]*domain.Box, error) {
	all, err := m.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*domain.Box
	for _, b := range all {
		if filter.Search != "" && !containsFold(b.Name, filter.Search) &&
			!containsFold(b.Location, filter.Search) &&
			!containsFold(b.Description, filter.Search) {
			continue
		}
		if filter.Location != "" && !containsFold(b.Location, filter.Location) {
			continue
		}
		out = append(out, b)
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "location":
			less = out[i].Location < out[j].Location
		case "created_at":
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
		default:
			less = out[i].Name < out[j].Name
		}
		if filter.Order == domain.SortDesc {
			return !less
		}
		return less
	})
	return out, nil
}

func (m *MockBoxStore) ListAll(ctx context.Context) ([]*domain.Box, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Box, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.boxes[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockBoxStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.boxes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.boxes, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockBoxStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.boxes), nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

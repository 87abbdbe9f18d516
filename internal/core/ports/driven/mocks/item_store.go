package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/crately/crately-core/internal/core/domain"
)

// MockItemStore is a mock implementation of ItemStore for testing
type MockItemStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Item
	order []string // Creation order
}

// NewMockItemStore creates a new MockItemStore
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		items: make(map[string]*domain.Item),
	}
}

func (m *MockItemStore) Save(ctx context.Context, item *domain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		m.order = append(m.order, item.ID)
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *MockItemStore) Get(ctx context.Context, id string) (*domain.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (m *MockItemStore) ListByBox(ctx context.Context, boxID string, filter domain.ItemFilter) ([]*domain.Item, error) {
	all, err := m.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []*domain.Item
	for _, it := range all {
		if it.BoxID != boxID {
			continue
		}
		if filter.Search != "" && !containsFold(it.Name, filter.Search) &&
			!containsFold(it.Details, filter.Search) {
			continue
		}
		if filter.MinQuantity != nil && it.Quantity < *filter.MinQuantity {
			continue
		}
		if filter.MaxQuantity != nil && it.Quantity > *filter.MaxQuantity {
			continue
		}
		out = append(out, it)
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "name"
	}
	sort.SliceStable(out, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "quantity":
			less = out[i].Quantity < out[j].Quantity
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

func (m *MockItemStore) ListAll(ctx context.Context) ([]*domain.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Item, 0, len(m.order))
	for _, id := range m.order {
		cp := *m.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockItemStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockItemStore) DeleteByBox(ctx context.Context, boxID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []string
	for _, id := range m.order {
		if m.items[id].BoxID == boxID {
			delete(m.items, id)
			continue
		}
		kept = append(kept, id)
	}
	m.order = kept
	return nil
}

func (m *MockItemStore) CountByBox(ctx context.Context, boxID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, it := range m.items {
		if it.BoxID == boxID {
			count++
		}
	}
	return count, nil
}

func (m *MockItemStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

func (m *MockItemStore) SumQuantity(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := 0
	for _, it := range m.items {
		sum += it.Quantity
	}
	return sum, nil
}

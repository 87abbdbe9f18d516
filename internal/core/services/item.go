package services

import (
	"context"
	"strings"
	"time"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven"
	"github.com/crately/crately-core/internal/core/ports/driving"
)

// Ensure itemService implements ItemService
var _ driving.ItemService = (*itemService)(nil)

// itemService implements the ItemService interface
type itemService struct {
	itemStore driven.ItemStore
	boxStore  driven.BoxStore
	cache     driven.SnapshotCache // optional, may be nil
}

// NewItemService creates a new ItemService
func NewItemService(
	itemStore driven.ItemStore,
	boxStore driven.BoxStore,
	cache driven.SnapshotCache,
) driving.ItemService {
	return &itemService{
		itemStore: itemStore,
		boxStore:  boxStore,
		cache:     cache,
	}
}

// ListByBox retrieves the items of one box matching the filter
func (s *itemService) ListByBox(ctx context.Context, boxID string, filter domain.ItemFilter) ([]*domain.Item, error) {
	// The box must exist; an empty box returns an empty list, not an error
	if _, err := s.boxStore.Get(ctx, boxID); err != nil {
		return nil, err
	}
	return s.itemStore.ListByBox(ctx, boxID, filter)
}

// Create creates a new item in an existing box
func (s *itemService) Create(ctx context.Context, req driving.CreateItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.BoxID == "" {
		return nil, domain.ErrInvalidInput
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	// Items belong to exactly one existing box
	if _, err := s.boxStore.Get(ctx, req.BoxID); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &domain.Item{
		ID:        newID(),
		BoxID:     req.BoxID,
		Name:      name,
		Quantity:  quantity,
		Details:   req.Details,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.itemStore.Save(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return item, nil
}

// Get retrieves an item by ID
func (s *itemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.itemStore.Get(ctx, id)
}

// Update applies a partial update to an item
func (s *itemService) Update(ctx context.Context, id string, req driving.UpdateItemRequest) (*domain.Item, error) {
	item, err := s.itemStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *req.Quantity
	}
	if req.Details != nil {
		item.Details = *req.Details
	}
	item.UpdatedAt = time.Now()

	if err := s.itemStore.Save(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return item, nil
}

// Delete deletes an item
func (s *itemService) Delete(ctx context.Context, id string) error {
	if _, err := s.itemStore.Get(ctx, id); err != nil {
		return err
	}
	if err := s.itemStore.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

func (s *itemService) invalidateSnapshot(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, SnapshotKey)
	}
}

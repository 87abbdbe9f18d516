package services

import (
	"context"
	"strings"
	"time"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven"
	"github.com/crately/crately-core/internal/core/ports/driving"
)

// Ensure boxService implements BoxService
var _ driving.BoxService = (*boxService)(nil)

// boxService implements the BoxService interface
type boxService struct {
	boxStore  driven.BoxStore
	itemStore driven.ItemStore
	cache     driven.SnapshotCache // optional, may be nil
}

// NewBoxService creates a new BoxService
func NewBoxService(
	boxStore driven.BoxStore,
	itemStore driven.ItemStore,
	cache driven.SnapshotCache,
) driving.BoxService {
	return &boxService{
		boxStore:  boxStore,
		itemStore: itemStore,
		cache:     cache,
	}
}

// List retrieves boxes matching the filter, enriched with item counts
func (s *boxService) List(ctx context.Context, filter domain.BoxFilter) ([]*domain.Box, error) {
	boxes, err := s.boxStore.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, b := range boxes {
		count, err := s.itemStore.CountByBox(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		b.ItemCount = count
	}
	return boxes, nil
}

// Create creates a new box
func (s *boxService) Create(ctx context.Context, req driving.CreateBoxRequest) (*domain.Box, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	box := &domain.Box{
		ID:          newID(),
		Name:        name,
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.boxStore.Save(ctx, box); err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return box, nil
}

// Get retrieves a box by ID with its item count
func (s *boxService) Get(ctx context.Context, id string) (*domain.Box, error) {
	box, err := s.boxStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.itemStore.CountByBox(ctx, id)
	if err != nil {
		return nil, err
	}
	box.ItemCount = count
	return box, nil
}

// Update applies a partial update to a box
func (s *boxService) Update(ctx context.Context, id string, req driving.UpdateBoxRequest) (*domain.Box, error) {
	box, err := s.boxStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		box.Name = name
	}
	if req.Location != nil {
		box.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		box.Description = *req.Description
	}
	box.UpdatedAt = time.Now()

	if err := s.boxStore.Save(ctx, box); err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return s.Get(ctx, id)
}

// Delete deletes a box and every item in it
func (s *boxService) Delete(ctx context.Context, id string) error {
	if _, err := s.boxStore.Get(ctx, id); err != nil {
		return err
	}
	if err := s.itemStore.DeleteByBox(ctx, id); err != nil {
		return err
	}
	if err := s.boxStore.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// Stats summarizes the inventory
func (s *boxService) Stats(ctx context.Context) (*domain.Stats, error) {
	totalBoxes, err := s.boxStore.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalItems, err := s.itemStore.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalQuantity, err := s.itemStore.SumQuantity(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Stats{
		TotalBoxes:    totalBoxes,
		TotalItems:    totalItems,
		TotalQuantity: totalQuantity,
		Timestamp:     time.Now().UTC(),
	}, nil
}

func (s *boxService) invalidateSnapshot(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, SnapshotKey)
	}
}

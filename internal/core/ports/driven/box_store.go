package driven

import (
	"context"

	"github.com/crately/crately-core/internal/core/domain"
)

// BoxStore handles box persistence (PostgreSQL)
type BoxStore interface {
	// Save creates or updates a box
	Save(ctx context.Context, box *domain.Box) error

	// Get retrieves a box by ID
	Get(ctx context.Context, id string) (*domain.Box, error)

	// List retrieves boxes matching the filter
	List(ctx context.Context, filter domain.BoxFilter) ([]*domain.Box, error)

	// ListAll retrieves every box in creation order (search snapshot)
	ListAll(ctx context.Context) ([]*domain.Box, error)

	// Delete deletes a box
	Delete(ctx context.Context, id string) error

	// Count returns total box count
	Count(ctx context.Context) (int, error)
}

// ItemStore handles item persistence (PostgreSQL)
type ItemStore interface {
	// Save creates or updates an item
	Save(ctx context.Context, item *domain.Item) error

	// Get retrieves an item by ID
	Get(ctx context.Context, id string) (*domain.Item, error)

	// ListByBox retrieves items of one box matching the filter
	ListByBox(ctx context.Context, boxID string, filter domain.ItemFilter) ([]*domain.Item, error)

	// ListAll retrieves every item in creation order (search snapshot)
	ListAll(ctx context.Context) ([]*domain.Item, error)

	// Delete deletes an item
	Delete(ctx context.Context, id string) error

	// DeleteByBox deletes all items of a box
	DeleteByBox(ctx context.Context, boxID string) error

	// CountByBox returns the item count for a box
	CountByBox(ctx context.Context, boxID string) (int, error)

	// Count returns total item count
	Count(ctx context.Context) (int, error)

	// SumQuantity returns the total quantity across all items
	SumQuantity(ctx context.Context) (int, error)
}

package driving

import (
	"context"

	"github.com/crately/crately-core/internal/core/domain"
)

// CreateItemRequest carries the fields for a new item
type CreateItemRequest struct {
	BoxID    string `json:"box_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Details  string `json:"details,omitempty"`
}

// UpdateItemRequest carries a partial item update; nil fields are untouched
type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Details  *string `json:"details,omitempty"`
}

// ItemService manages items within boxes
type ItemService interface {
	// ListByBox retrieves the items of one box matching the filter
	ListByBox(ctx context.Context, boxID string, filter domain.ItemFilter) ([]*domain.Item, error)

	// Create creates a new item in an existing box
	Create(ctx context.Context, req CreateItemRequest) (*domain.Item, error)

	// Get retrieves an item by ID
	Get(ctx context.Context, id string) (*domain.Item, error)

	// Update applies a partial update to an item
	Update(ctx context.Context, id string, req UpdateItemRequest) (*domain.Item, error)

	// Delete deletes an item
	Delete(ctx context.Context, id string) error
}

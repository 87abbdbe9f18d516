package driving

import (
	"context"

	"github.com/crately/crately-core/internal/core/domain"
)

// CreateBoxRequest carries the fields for a new box
type CreateBoxRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateBoxRequest carries a partial box update; nil fields are untouched
type UpdateBoxRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BoxService manages boxes
type BoxService interface {
	// List retrieves boxes matching the filter, enriched with item counts
	List(ctx context.Context, filter domain.BoxFilter) ([]*domain.Box, error)

	// Create creates a new box
	Create(ctx context.Context, req CreateBoxRequest) (*domain.Box, error)

	// Get retrieves a box by ID with its item count
	Get(ctx context.Context, id string) (*domain.Box, error)

	// Update applies a partial update to a box
	Update(ctx context.Context, id string, req UpdateBoxRequest) (*domain.Box, error)

	// Delete deletes a box and every item in it
	Delete(ctx context.Context, id string) error

	// Stats summarizes the inventory
	Stats(ctx context.Context) (*domain.Stats, error)
}

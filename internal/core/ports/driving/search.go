package driving

import (
	"context"

	"github.com/crately/crately-core/internal/core/domain"
)

// SearchService runs the typo-tolerant global search across boxes and items
type SearchService interface {
	// Search matches query against both collections and returns one merged,
	// ranked list. An empty query returns everything; a query with no hits
	// returns an empty list, not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error)
}

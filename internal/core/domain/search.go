package domain

import "time"

// SearchOrigin tags which collection a search result came from
type SearchOrigin string

const (
	OriginBox  SearchOrigin = "box"
	OriginItem SearchOrigin = "item"
)

// UnknownBoxName is the display name used for items whose parent box no
// longer exists. Orphans still surface in results rather than failing the
// whole search.
const UnknownBoxName = "Unknown Box"

// SearchOptions configures a global search request
type SearchOptions struct {
	Limit int `json:"limit"`

	// BoxesFirst breaks score ties between origins. The default policy ranks
	// boxes before items at equal score.
	BoxesFirst bool `json:"boxes_first"`

	// OrphanName replaces the parent box name for orphaned items.
	// Empty means UnknownBoxName.
	OrphanName string `json:"orphan_name,omitempty"`
}

// DefaultSearchOptions returns sensible defaults
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Limit:      50,
		BoxesFirst: true,
	}
}

// HighlightSegment is a contiguous run of a result's display name, marked as
// a literal query match or not. Concatenating every segment's Text in order
// reconstructs the name exactly.
type HighlightSegment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// SearchResult is one ranked hit from the global search
type SearchResult struct {
	Origin     SearchOrigin       `json:"type"`
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Score      float64            `json:"score"` // 0 = perfect match, larger = worse
	Field      string             `json:"field,omitempty"`
	Location   string             `json:"location,omitempty"` // Box results only
	Details    string             `json:"details,omitempty"`
	BoxID      string             `json:"box_id,omitempty"`   // Item results only
	BoxName    string             `json:"box_name,omitempty"` // Item results only
	Quantity   int                `json:"quantity,omitempty"` // Item results only
	Highlights []HighlightSegment `json:"highlights,omitempty"`
}

// SearchResponse wraps the merged, ranked result list
type SearchResponse struct {
	Query      string          `json:"query"`
	Results    []*SearchResult `json:"results"`
	TotalCount int             `json:"total_count"`
	Took       time.Duration   `json:"took" swaggertype:"integer" example:"1500000"`
}

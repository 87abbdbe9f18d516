package domain

import "time"

// Box represents a physical storage container
type Box struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	ItemCount   int       `json:"item_count"` // Derived, not stored
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Item represents a thing stored inside exactly one box
type Item struct {
	ID        string    `json:"id"`
	BoxID     string    `json:"box_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats summarizes the whole inventory
type Stats struct {
	TotalBoxes    int       `json:"total_boxes"`
	TotalItems    int       `json:"total_items"`
	TotalQuantity int       `json:"total_quantity"`
	Timestamp     time.Time `json:"timestamp"`
}

// SortOrder for list endpoints
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// BoxFilter narrows and orders a box listing
type BoxFilter struct {
	Search   string    `json:"search,omitempty"`   // Substring match on name/location/description
	Location string    `json:"location,omitempty"` // Substring match on location only
	SortBy   string    `json:"sort_by,omitempty"`  // name, location or created_at
	Order    SortOrder `json:"order,omitempty"`
}

// ItemFilter narrows and orders an item listing within a box
type ItemFilter struct {
	Search      string    `json:"search,omitempty"` // Substring match on name/details
	MinQuantity *int      `json:"min_quantity,omitempty"`
	MaxQuantity *int      `json:"max_quantity,omitempty"`
	SortBy      string    `json:"sort_by,omitempty"` // name, quantity or created_at
	Order       SortOrder `json:"order,omitempty"`
}

package postgres

import (
	"context"
	"database/sql"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.ItemStore = (*ItemStore)(nil)

// ItemStore implements driven.ItemStore using PostgreSQL
type ItemStore struct {
	db *DB
}

// NewItemStore creates a new ItemStore
func NewItemStore(db *DB) *ItemStore {
	return &ItemStore{db: db}
}

// Save creates or updates an item
func (s *ItemStore) Save(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, box_id, name, quantity, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			quantity = EXCLUDED.quantity,
			details = EXCLUDED.details,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.BoxID,
		item.Name,
		item.Quantity,
		item.Details,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

// Get retrieves an item by ID
func (s *ItemStore) Get(ctx context.Context, id string) (*domain.Item, error) {
	query := `
		SELECT id, box_id, name, quantity, details, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.BoxID,
		&item.Name,
		&item.Quantity,
		&item.Details,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByBox retrieves items of one box matching the filter
func (s *ItemStore) ListByBox(ctx context.Context, boxID string, filter domain.ItemFilter) ([]*domain.Item, error) {
	query := `
		SELECT id, box_id, name, quantity, details, created_at, updated_at
		FROM items
		WHERE box_id = $1
		AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR details ILIKE '%' || $2 || '%')
		AND ($3 < 0 OR quantity >= $3)
		AND ($4 < 0 OR quantity <= $4)
	`
	query += orderClause(filter.SortBy, filter.Order, map[string]string{
		"name":       "name",
		"quantity":   "quantity",
		"created_at": "created_at",
	}, "name")

	minQ, maxQ := -1, -1
	if filter.MinQuantity != nil {
		minQ = *filter.MinQuantity
	}
	if filter.MaxQuantity != nil {
		maxQ = *filter.MaxQuantity
	}

	rows, err := s.db.QueryContext(ctx, query, boxID, filter.Search, minQ, maxQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListAll retrieves every item in creation order
func (s *ItemStore) ListAll(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, box_id, name, quantity, details, created_at, updated_at
		FROM items
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// Delete deletes an item
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByBox deletes all items of a box
func (s *ItemStore) DeleteByBox(ctx context.Context, boxID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE box_id = $1`, boxID)
	return err
}

// CountByBox returns the item count for a box
func (s *ItemStore) CountByBox(ctx context.Context, boxID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE box_id = $1`, boxID).Scan(&count)
	return count, err
}

// Count returns total item count
func (s *ItemStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)
	return count, err
}

// SumQuantity returns the total quantity across all items
func (s *ItemStore) SumQuantity(ctx context.Context) (int, error) {
	var sum int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM items`).Scan(&sum)
	return sum, err
}

func scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.BoxID,
			&item.Name,
			&item.Quantity,
			&item.Details,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

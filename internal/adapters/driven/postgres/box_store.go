package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.BoxStore = (*BoxStore)(nil)

// BoxStore implements driven.BoxStore using PostgreSQL
type BoxStore struct {
	db *DB
}

// NewBoxStore creates a new BoxStore
func NewBoxStore(db *DB) *BoxStore {
	return &BoxStore{db: db}
}

// Save creates or updates a box
func (s *BoxStore) Save(ctx context.Context, box *domain.Box) error {
	query := `
		INSERT INTO boxes (id, name, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		box.ID,
		box.Name,
		box.Location,
		box.Description,
		box.CreatedAt,
		box.UpdatedAt,
	)
	return err
}

// Get retrieves a box by ID
func (s *BoxStore) Get(ctx context.Context, id string) (*domain.Box, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM boxes
		WHERE id = $1
	`

	var box domain.Box
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&box.ID,
		&box.Name,
		&box.Location,
		&box.Description,
		&box.CreatedAt,
		&box.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &box, nil
}

// List retrieves boxes matching the filter
func (s *BoxStore) List(ctx context.Context, filter domain.BoxFilter) ([]*domain.Box, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM boxes
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%'
			OR location ILIKE '%' || $1 || '%'
			OR description ILIKE '%' || $1 || '%')
		AND ($2 = '' OR location ILIKE '%' || $2 || '%')
	`
	query += orderClause(filter.SortBy, filter.Order, map[string]string{
		"name":       "name",
		"location":   "location",
		"created_at": "created_at",
	}, "name")

	rows, err := s.db.QueryContext(ctx, query, filter.Search, filter.Location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBoxes(rows)
}

// ListAll retrieves every box in creation order
func (s *BoxStore) ListAll(ctx context.Context) ([]*domain.Box, error) {
	query := `
		SELECT id, name, location, description, created_at, updated_at
		FROM boxes
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBoxes(rows)
}

// Delete deletes a box
func (s *BoxStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM boxes WHERE id = $1`, id)
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

// Count returns total box count
func (s *BoxStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boxes`).Scan(&count)
	return count, err
}

func scanBoxes(rows *sql.Rows) ([]*domain.Box, error) {
	var boxes []*domain.Box
	for rows.Next() {
		var box domain.Box
		if err := rows.Scan(
			&box.ID,
			&box.Name,
			&box.Location,
			&box.Description,
			&box.CreatedAt,
			&box.UpdatedAt,
		); err != nil {
			return nil, err
		}
		boxes = append(boxes, &box)
	}
	return boxes, rows.Err()
}

// orderClause builds an ORDER BY from a whitelisted column map. Unknown sort
// keys fall back to the default column rather than erroring.
func orderClause(sortBy string, order domain.SortOrder, allowed map[string]string, def string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = def
	}
	dir := "ASC"
	if order == domain.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id", col, dir)
}

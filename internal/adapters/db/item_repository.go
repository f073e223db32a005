package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"
)

// ItemRepository implements the item repository interface
type ItemRepository struct {
	conn *Connection
}

// NewItemRepository creates a new item repository
func NewItemRepository(conn *Connection) *ItemRepository {
	return &ItemRepository{conn: conn}
}

// Create creates a new item
func (r *ItemRepository) Create(ctx context.Context, item *shared.Item) error {
	query := `
		INSERT INTO items (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.conn.GetDB().QueryRowContext(ctx, query,
		item.Title,
		item.Description,
		item.OwnerID,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*shared.Item, error) {
	query := `
		SELECT id, title, description, owner_id, created_at
		FROM items
		WHERE id = $1
	`

	var item shared.Item
	var description sql.NullString
	err := r.conn.GetDB().QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Title,
		&description,
		&item.OwnerID,
		&item.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	item.Description = description.String
	return &item, nil
}

// List retrieves one page of items plus the total count for the same filter.
// Every filter value is a bound parameter; the query text never contains
// user input. ILIKE mirrors the case-insensitive substring match of the
// original schema's collation.
func (r *ItemRepository) List(ctx context.Context, filter outbound.ListFilter) ([]*shared.Item, int, error) {
	var whereClauses []string
	var args []interface{}
	argCount := 1

	if filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argCount, argCount+1))
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
		argCount += 2
	}

	if filter.OwnerID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("owner_id = $%d", argCount))
		args = append(args, *filter.OwnerID)
		argCount++
	}

	var where string
	if len(whereClauses) > 0 {
		where = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	// Total count shares the filter predicate, independent of pagination
	countQuery := "SELECT COUNT(*) FROM items " + where
	var total int
	if err := r.conn.GetDB().QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, owner_id, created_at
		FROM items
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, argCount, argCount+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.conn.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []*shared.Item{}
	for rows.Next() {
		var item shared.Item
		var description sql.NullString
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&description,
			&item.OwnerID,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Description = description.String
		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating items: %w", err)
	}

	return items, total, nil
}

// Update updates an item's title and description; id, owner and creation
// time are immutable
func (r *ItemRepository) Update(ctx context.Context, item *shared.Item) error {
	query := `
		UPDATE items
		SET title = $2, description = $3
		WHERE id = $1
	`

	result, err := r.conn.GetDB().ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.Description,
	)

	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return shared.ErrItemNotFound
	}

	return nil
}

// Delete deletes an item
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM items
		WHERE id = $1
	`

	result, err := r.conn.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return shared.ErrItemNotFound
	}

	return nil
}

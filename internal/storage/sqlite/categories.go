package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/budgetwise/internal/models"
	"github.com/mmynk/budgetwise/internal/storage"
)

// insertCategorySQL inserts a category unless the name is taken.
// Zero affected rows means the name already existed.
const insertCategorySQL = `INSERT INTO categories (name) VALUES (?) ON CONFLICT(name) DO NOTHING`

// AddCategory inserts a new category and returns its ID.
func (s *SQLiteStore) AddCategory(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: category name is required", storage.ErrInvalidInput)
	}

	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, insertCategorySQL, name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("%w: %s", storage.ErrCategoryExists, name)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read category id: %w", err)
	}

	return id, nil
}

// ListCategories retrieves all categories in insertion order.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

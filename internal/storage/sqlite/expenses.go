package sqlite

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/budgetwise/internal/models"
	"github.com/mmynk/budgetwise/internal/storage"
)

// AddExpense validates and persists a new expense, returning its ID.
func (s *SQLiteStore) AddExpense(ctx context.Context, e models.NewExpense) (int64, error) {
	if math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) || e.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be a positive number, got %v", storage.ErrInvalidInput, e.Amount)
	}
	if strings.TrimSpace(e.Category) == "" {
		return 0, fmt.Errorf("%w: category is required", storage.ErrInvalidInput)
	}

	date := e.Date
	if date == "" {
		date = s.today()
	} else if _, err := models.ParseDate(date); err != nil {
		return 0, fmt.Errorf("%w: %w", storage.ErrInvalidInput, err)
	}

	conn, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx,
		"INSERT INTO expenses (amount, category, description, date) VALUES (?, ?, ?, ?)",
		e.Amount, e.Category, e.Description, date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read expense id: %w", err)
	}

	return id, nil
}

// ListExpenses retrieves expenses matching the filter, newest date first.
// Rows sharing a date are ordered by descending ID.
func (s *SQLiteStore) ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error) {
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", storage.ErrInvalidInput)
	}

	query, args := buildListQuery(filter)

	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// buildListQuery assembles the filtered SELECT for ListExpenses.
// Databases created before the description column was NOT NULL may hold NULLs; they read as "".
func buildListQuery(filter models.ExpenseFilter) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString("SELECT id, amount, category, COALESCE(description, ''), date FROM expenses WHERE 1=1")

	if filter.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, filter.Category)
	}
	if filter.StartDate != "" {
		sb.WriteString(" AND date >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		sb.WriteString(" AND date <= ?")
		args = append(args, filter.EndDate)
	}

	sb.WriteString(" ORDER BY date DESC, id DESC")

	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	return sb.String(), args
}

// DeleteExpense removes an expense by ID and reports whether a row existed.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// SummaryByCategory totals expense amounts for every category value present in the expenses table.
func (s *SQLiteStore) SummaryByCategory(ctx context.Context) ([]models.CategoryTotal, error) {
	conn, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx,
		"SELECT category, SUM(amount) FROM expenses GROUP BY category ORDER BY category",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	defer rows.Close()

	summary := []models.CategoryTotal{}
	for rows.Next() {
		var ct models.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		summary = append(summary, ct)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}

	return summary, nil
}

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/budgetwise/internal/models"
)

var (
	// ErrInvalidInput is returned when caller input is rejected before anything is written.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCategoryExists is returned by AddCategory when the name is already taken.
	// It is an expected outcome, not a storage failure.
	ErrCategoryExists = errors.New("category already exists")
)

// ExpenseStore defines expense persistence operations.
type ExpenseStore interface {
	// AddExpense persists a new expense and returns its assigned ID.
	// An empty Date is replaced with the current date.
	AddExpense(ctx context.Context, e models.NewExpense) (int64, error)

	// ListExpenses returns expenses matching every set field of the filter,
	// newest date first.
	ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error)

	// DeleteExpense removes an expense by ID and reports whether it existed.
	DeleteExpense(ctx context.Context, id int64) (bool, error)

	// SummaryByCategory totals amounts per distinct expense category.
	SummaryByCategory(ctx context.Context) ([]models.CategoryTotal, error)
}

// CategoryStore defines category persistence operations.
type CategoryStore interface {
	// AddCategory inserts a category and returns its ID.
	// Returns ErrCategoryExists if the name is already present.
	AddCategory(ctx context.Context, name string) (int64, error)

	// ListCategories returns all categories in insertion order.
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Store combines the expense and category stores.
// This abstraction allows swapping storage backends without changing the service layer.
type Store interface {
	ExpenseStore
	CategoryStore

	// Close releases any resources held by the store.
	Close() error
}

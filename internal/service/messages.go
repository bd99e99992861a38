package service

import (
	"encoding/json"

	"github.com/mmynk/budgetwise/internal/models"
)

// AddExpenseRequest carries a new expense. Amount is kept raw so that both
// JSON numbers and numeric strings are accepted.
type AddExpenseRequest struct {
	Amount      json.RawMessage `json:"amount,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date,omitempty"`
}

type AddExpenseResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ListExpensesRequest struct {
	Category  string `json:"category,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []models.Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ID int64 `json:"id"`
}

type DeleteExpenseResponse struct {
	Message string `json:"message"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Summary []models.CategoryTotal `json:"summary"`
}

type AddCategoryRequest struct {
	Name string `json:"name"`
}

type AddCategoryResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

// GetTrendsRequest selects the trend window. A nil Days uses the default of 14.
type GetTrendsRequest struct {
	Days *int `json:"days,omitempty"`
}

// GetCategoryBreakdownRequest selects the breakdown window. A nil Days uses the default of 30.
type GetCategoryBreakdownRequest struct {
	Days *int `json:"days,omitempty"`
}

type GetSpendingTrendRequest struct{}

type CompareMonthsRequest struct{}

// GetForecastRequest overrides the configured daily budget when DailyBudget is set.
type GetForecastRequest struct {
	DailyBudget *float64 `json:"daily_budget,omitempty"`

	// SavingsGoal, when set, adds a plan for reaching it to the response.
	SavingsGoal *float64 `json:"savings_goal,omitempty"`
}

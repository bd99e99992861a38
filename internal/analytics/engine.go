// Package analytics derives aggregated views from stored expenses.
//
// The Build*/Analyze*/Compare*/Forecast* functions are pure. Engine binds them to an
// expense store and a clock, fetching only the date range each view needs.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mmynk/budgetwise/internal/models"
	"github.com/mmynk/budgetwise/internal/storage"
)

const (
	// DefaultTrendDays is the trend window used when a caller does not pick one.
	DefaultTrendDays = 14

	// DefaultBreakdownDays is the breakdown window used when a caller does not pick one.
	DefaultBreakdownDays = 30
)

// Engine computes analytics over an expense store. It holds no state of its own.
type Engine struct {
	expenses storage.ExpenseStore
	now      func() time.Time
}

// NewEngine creates an Engine reading from the given store.
// A nil clock defaults to time.Now.
func NewEngine(expenses storage.ExpenseStore, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{expenses: expenses, now: now}
}

// Trends returns the daily series for [today-days, today] with statistics.
func (e *Engine) Trends(ctx context.Context, days int) (models.TrendReport, error) {
	end := e.now()
	start := end.AddDate(0, 0, -days)

	expenses, err := e.listBetween(ctx, start, end)
	if err != nil {
		return models.TrendReport{}, err
	}

	return BuildTrendSeries(expenses, start, end), nil
}

// CategoryBreakdown ranks categories over [today-days, today].
func (e *Engine) CategoryBreakdown(ctx context.Context, days int) (models.Breakdown, error) {
	end := e.now()
	start := end.AddDate(0, 0, -days)

	expenses, err := e.listBetween(ctx, start, end)
	if err != nil {
		return models.Breakdown{}, err
	}

	return BuildBreakdown(expenses), nil
}

// Summary returns per-category totals over all expenses.
func (e *Engine) Summary(ctx context.Context) ([]models.CategoryTotal, error) {
	summary, err := e.expenses.SummaryByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	return summary, nil
}

// SpendingTrend compares the last 15 days of spending with the 15 days before.
func (e *Engine) SpendingTrend(ctx context.Context) (models.SpendingTrend, error) {
	now := e.now()

	expenses, err := e.listBetween(ctx, now.AddDate(0, 0, -2*trendWindowDays), now)
	if err != nil {
		return models.SpendingTrend{}, err
	}

	return AnalyzeSpendingTrend(expenses, now), nil
}

// CompareMonths compares the current calendar month with the previous one.
func (e *Engine) CompareMonths(ctx context.Context) (models.MonthComparison, error) {
	now := e.now()
	start, _ := monthBounds(now, -1)
	_, end := monthBounds(now, 0)

	expenses, err := e.expenses.ListExpenses(ctx, models.ExpenseFilter{StartDate: start, EndDate: end})
	if err != nil {
		return models.MonthComparison{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	return CompareMonths(expenses, now), nil
}

// Forecast projects this month's spending against a daily budget.
func (e *Engine) Forecast(ctx context.Context, dailyBudget float64) (models.MonthlyForecast, error) {
	now := e.now()

	expenses, err := e.listBetween(ctx, now.AddDate(0, 0, -forecastWindowDays), now)
	if err != nil {
		return models.MonthlyForecast{}, err
	}

	return ForecastMonth(expenses, now, dailyBudget), nil
}

// PlanSavings is Forecast with a savings plan for goal attached.
// A negative goal is rejected as invalid input.
func (e *Engine) PlanSavings(ctx context.Context, dailyBudget, goal float64) (models.MonthlyForecast, error) {
	if goal < 0 || math.IsNaN(goal) || math.IsInf(goal, 0) {
		return models.MonthlyForecast{}, fmt.Errorf("%w: savings goal must be a non-negative number, got %v", storage.ErrInvalidInput, goal)
	}

	forecast, err := e.Forecast(ctx, dailyBudget)
	if err != nil {
		return models.MonthlyForecast{}, err
	}

	plan := PlanSavings(forecast, goal, e.now())
	forecast.SavingsGoal = &plan
	return forecast, nil
}

func (e *Engine) listBetween(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	expenses, err := e.expenses.ListExpenses(ctx, models.ExpenseFilter{
		StartDate: models.FormatDate(start),
		EndDate:   models.FormatDate(end),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/budgetwise/internal/analytics"
	"github.com/mmynk/budgetwise/internal/models"
)

// AnalyticsDefaults are applied to requests that leave a field unset.
type AnalyticsDefaults struct {
	TrendDays     int
	BreakdownDays int
	DailyBudget   float64
}

// DefaultAnalyticsDefaults returns the engine defaults with no daily budget.
func DefaultAnalyticsDefaults() AnalyticsDefaults {
	return AnalyticsDefaults{
		TrendDays:     analytics.DefaultTrendDays,
		BreakdownDays: analytics.DefaultBreakdownDays,
	}
}

// AnalyticsService implements the Connect AnalyticsService
type AnalyticsService struct {
	engine   *analytics.Engine
	defaults AnalyticsDefaults
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(engine *analytics.Engine, defaults AnalyticsDefaults) *AnalyticsService {
	return &AnalyticsService{engine: engine, defaults: defaults}
}

// GetTrends returns the zero-filled daily spending series.
func (s *AnalyticsService) GetTrends(ctx context.Context, req *connect.Request[GetTrendsRequest]) (*connect.Response[models.TrendReport], error) {
	days := s.defaults.TrendDays
	if req.Msg.Days != nil {
		days = *req.Msg.Days
	}
	slog.Info("GetTrends request received", "days", days)

	report, err := s.engine.Trends(ctx, days)
	if err != nil {
		slog.Error("GetTrends failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&report), nil
}

// GetCategoryBreakdown ranks categories by spending with percentages.
func (s *AnalyticsService) GetCategoryBreakdown(ctx context.Context, req *connect.Request[GetCategoryBreakdownRequest]) (*connect.Response[models.Breakdown], error) {
	days := s.defaults.BreakdownDays
	if req.Msg.Days != nil {
		days = *req.Msg.Days
	}
	slog.Info("GetCategoryBreakdown request received", "days", days)

	breakdown, err := s.engine.CategoryBreakdown(ctx, days)
	if err != nil {
		slog.Error("GetCategoryBreakdown failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&breakdown), nil
}

// GetSpendingTrend reports whether recent spending is rising or falling.
func (s *AnalyticsService) GetSpendingTrend(ctx context.Context, req *connect.Request[GetSpendingTrendRequest]) (*connect.Response[models.SpendingTrend], error) {
	slog.Info("GetSpendingTrend request received")

	trend, err := s.engine.SpendingTrend(ctx)
	if err != nil {
		slog.Error("GetSpendingTrend failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&trend), nil
}

// CompareMonths compares this month's spending with last month's.
func (s *AnalyticsService) CompareMonths(ctx context.Context, req *connect.Request[CompareMonthsRequest]) (*connect.Response[models.MonthComparison], error) {
	slog.Info("CompareMonths request received")

	cmp, err := s.engine.CompareMonths(ctx)
	if err != nil {
		slog.Error("CompareMonths failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&cmp), nil
}

// GetForecast projects this month's spending against the daily budget,
// with a savings plan when the request names a goal.
func (s *AnalyticsService) GetForecast(ctx context.Context, req *connect.Request[GetForecastRequest]) (*connect.Response[models.MonthlyForecast], error) {
	budget := s.defaults.DailyBudget
	if req.Msg.DailyBudget != nil {
		budget = *req.Msg.DailyBudget
	}
	slog.Info("GetForecast request received", "daily_budget", budget, "with_savings_goal", req.Msg.SavingsGoal != nil)

	var (
		forecast models.MonthlyForecast
		err      error
	)
	if req.Msg.SavingsGoal != nil {
		forecast, err = s.engine.PlanSavings(ctx, budget, *req.Msg.SavingsGoal)
	} else {
		forecast, err = s.engine.Forecast(ctx, budget)
	}
	if err != nil {
		slog.Error("GetForecast failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&forecast), nil
}

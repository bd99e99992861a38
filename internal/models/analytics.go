package models

// TrendPoint is the total spent on one calendar day.
type TrendPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// TrendStatistics summarizes a trend series.
type TrendStatistics struct {
	TotalAmount float64 `json:"total_amount"`

	// AverageDaily is TotalAmount divided by the number of days in the series.
	AverageDaily float64 `json:"average_daily"`

	MaximumDaily float64 `json:"maximum_daily"`

	// MinimumDaily is the smallest strictly positive daily amount.
	// Days with no spending are ignored; 0 means no day had spending.
	MinimumDaily float64 `json:"minimum_daily"`
}

// TrendReport is a zero-filled daily series with its statistics.
type TrendReport struct {
	Trends     []TrendPoint    `json:"trends"`
	Statistics TrendStatistics `json:"statistics"`
}

// BreakdownEntry is one category's share of total spending.
type BreakdownEntry struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Breakdown ranks categories by amount spent, largest first.
type Breakdown struct {
	Breakdown   []BreakdownEntry `json:"breakdown"`
	TotalAmount float64          `json:"total_amount"`
}

// TrendDirection classifies how recent spending compares with the period before it.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendNeutral    TrendDirection = "neutral"
)

// SpendingTrend compares the last 15 days of spending with the 15 days before.
type SpendingTrend struct {
	Trend TrendDirection `json:"trend"`

	// Percentage is the rounded absolute change.
	Percentage int `json:"percentage"`

	RecentTotal float64 `json:"recent_total"`
	OlderTotal  float64 `json:"older_total"`
}

// MonthComparison compares the current calendar month with the previous one.
type MonthComparison struct {
	CurrentMonth  float64 `json:"current_month"`
	PreviousMonth float64 `json:"previous_month"`
	Difference    float64 `json:"difference"`

	// PercentageChange is rounded; 0 when the previous month had no spending.
	PercentageChange int `json:"percentage_change"`
}

// MonthlyForecast projects this month's spending from recent expenses.
type MonthlyForecast struct {
	// AverageDaily is the recency-weighted mean expense amount over the last 30 days.
	// It averages per expense, not per calendar day, so several expenses on one day
	// are not summed first. The forecast has always been computed this way.
	AverageDaily       float64 `json:"average_daily"`
	ForecastedSpending float64 `json:"forecasted_spending"`
	Budget             float64 `json:"budget"`

	// Difference is ForecastedSpending minus Budget; negative means under budget.
	Difference float64 `json:"difference"`

	// Confidence grows with the number of distinct days that have data (0-100).
	Confidence int `json:"confidence"`

	// TopCategory is the category with the most spending this month, or "Other".
	TopCategory string `json:"top_category"`

	// SavingsPotential is half the projected surplus when under budget, otherwise 0.
	SavingsPotential float64 `json:"savings_potential"`

	// SavingsGoal is set only when a goal was asked for.
	SavingsGoal *SavingsPlan `json:"savings_goal,omitempty"`
}

// SavingsPlan estimates when a savings goal is reached at SavingsPotential per month.
type SavingsPlan struct {
	Goal           float64 `json:"goal"`
	MonthlySavings float64 `json:"monthly_savings"`

	// Reachable is false when nothing can be saved; MonthsNeeded and TargetDate are then zero.
	Reachable    bool   `json:"reachable"`
	MonthsNeeded int    `json:"months_needed"`
	TargetDate   string `json:"target_date,omitempty"`
}

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/budgetwise/internal/models"
)

var now = time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)

func repeat(n int, e models.Expense) []models.Expense {
	out := make([]models.Expense, n)
	for i := range out {
		out[i] = e
	}
	return out
}

func TestAnalyzeSpendingTrend(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		want     models.TrendDirection
		wantPct  int
	}{
		{
			name:     "too few expenses",
			expenses: repeat(9, models.Expense{Amount: 10, Date: "2024-03-30"}),
			want:     models.TrendNeutral,
		},
		{
			name:     "no older spending",
			expenses: repeat(12, models.Expense{Amount: 10, Date: "2024-03-30"}),
			want:     models.TrendNeutral,
		},
		{
			name: "increasing",
			expenses: append(
				repeat(5, models.Expense{Amount: 20, Date: "2024-03-25"}),
				repeat(5, models.Expense{Amount: 10, Date: "2024-03-10"})...,
			),
			want:    models.TrendIncreasing,
			wantPct: 100,
		},
		{
			name: "decreasing",
			expenses: append(
				repeat(5, models.Expense{Amount: 5, Date: "2024-03-20"}),
				repeat(5, models.Expense{Amount: 10, Date: "2024-03-05"})...,
			),
			want:    models.TrendDecreasing,
			wantPct: 50,
		},
		{
			name: "within threshold",
			expenses: append(
				repeat(5, models.Expense{Amount: 10.4, Date: "2024-03-20"}),
				repeat(5, models.Expense{Amount: 10, Date: "2024-03-05"})...,
			),
			want:    models.TrendNeutral,
			wantPct: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSpendingTrend(tt.expenses, now)
			if got.Trend != tt.want {
				t.Errorf("trend = %s, want %s", got.Trend, tt.want)
			}
			if got.Percentage != tt.wantPct {
				t.Errorf("percentage = %d, want %d", got.Percentage, tt.wantPct)
			}
		})
	}
}

func TestCompareMonths(t *testing.T) {
	t.Run("current against previous", func(t *testing.T) {
		got := CompareMonths([]models.Expense{
			{Amount: 150, Date: "2024-03-02"},
			{Amount: 100, Date: "2024-02-29"},
			{Amount: 999, Date: "2024-01-31"},
		}, now)

		if got.CurrentMonth != 150 || got.PreviousMonth != 100 {
			t.Errorf("months = %v/%v, want 150/100", got.CurrentMonth, got.PreviousMonth)
		}
		if got.Difference != 50 {
			t.Errorf("difference = %v, want 50", got.Difference)
		}
		if got.PercentageChange != 50 {
			t.Errorf("change = %d, want 50", got.PercentageChange)
		}
	})

	t.Run("empty previous month", func(t *testing.T) {
		got := CompareMonths([]models.Expense{{Amount: 10, Date: "2024-03-01"}}, now)
		if got.PercentageChange != 0 {
			t.Errorf("change = %d, want 0", got.PercentageChange)
		}
	})

	t.Run("january wraps to december", func(t *testing.T) {
		jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		got := CompareMonths([]models.Expense{{Amount: 40, Date: "2024-12-31"}}, jan)
		if got.PreviousMonth != 40 {
			t.Errorf("previous = %v, want 40", got.PreviousMonth)
		}
	})
}

func TestForecastMonth(t *testing.T) {
	t.Run("no expenses", func(t *testing.T) {
		got := ForecastMonth(nil, now, 10)
		if got.ForecastedSpending != 0 || got.Confidence != 0 {
			t.Errorf("forecast = %+v, want zero spending and confidence", got)
		}
		if got.Budget != 310 {
			t.Errorf("budget = %v, want 310", got.Budget)
		}
		if got.Difference != -310 {
			t.Errorf("difference = %v, want -310", got.Difference)
		}
		if got.SavingsPotential != 155 {
			t.Errorf("savings potential = %v, want 155", got.SavingsPotential)
		}
		if got.TopCategory != "Other" {
			t.Errorf("top category = %q, want Other", got.TopCategory)
		}
	})

	t.Run("uniform amounts average to amount", func(t *testing.T) {
		got := ForecastMonth([]models.Expense{
			{Amount: 20, Date: "2024-03-31"},
			{Amount: 20, Date: "2024-03-29"},
			{Amount: 20, Date: "2024-03-20"},
		}, now, 0)

		if math.Abs(got.AverageDaily-20) > 0.001 {
			t.Errorf("average = %v, want 20", got.AverageDaily)
		}
		if math.Abs(got.ForecastedSpending-620) > 0.001 {
			t.Errorf("forecast = %v, want 620", got.ForecastedSpending)
		}
		if got.Confidence != 10 {
			t.Errorf("confidence = %d, want 10", got.Confidence)
		}
	})

	t.Run("recent expenses weigh more", func(t *testing.T) {
		got := ForecastMonth([]models.Expense{
			{Amount: 100, Date: "2024-03-30"},
			{Amount: 10, Date: "2024-03-11"},
		}, now, 0)
		if got.AverageDaily <= 55 {
			t.Errorf("average = %v, want above the unweighted mean 55", got.AverageDaily)
		}
	})

	t.Run("confidence capped at 100", func(t *testing.T) {
		var expenses []models.Expense
		for d := 0; d <= 30; d++ {
			expenses = append(expenses, models.Expense{Amount: 1, Date: models.FormatDate(now.AddDate(0, 0, -d))})
		}
		if got := ForecastMonth(expenses, now, 0); got.Confidence != 100 {
			t.Errorf("confidence = %d, want 100", got.Confidence)
		}
	})
}

func TestTopCategory(t *testing.T) {
	tests := []struct {
		name     string
		expenses []models.Expense
		want     string
	}{
		{
			name: "no expenses",
			want: "Other",
		},
		{
			name: "largest total this month wins",
			expenses: []models.Expense{
				{Amount: 30, Category: "Food", Date: "2024-03-05"},
				{Amount: 25, Category: "Food", Date: "2024-03-06"},
				{Amount: 50, Category: "Housing", Date: "2024-03-20"},
				{Amount: 500, Category: "Travel", Date: "2024-02-28"},
			},
			want: "Food",
		},
		{
			name: "ties go to first seen",
			expenses: []models.Expense{
				{Amount: 10, Category: "B", Date: "2024-03-02"},
				{Amount: 10, Category: "A", Date: "2024-03-01"},
			},
			want: "B",
		},
		{
			name: "only last month",
			expenses: []models.Expense{
				{Amount: 80, Category: "Travel", Date: "2024-02-10"},
			},
			want: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopCategory(tt.expenses, now); got != tt.want {
				t.Errorf("TopCategory = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSavingsPotential(t *testing.T) {
	tests := []struct {
		difference float64
		want       float64
	}{
		{-100, 50},
		{-0.5, 0.25},
		{0, 0},
		{20, 0},
	}

	for _, tt := range tests {
		got := SavingsPotential(models.MonthlyForecast{Difference: tt.difference})
		if math.Abs(got-tt.want) > 0.001 {
			t.Errorf("SavingsPotential(difference %v) = %v, want %v", tt.difference, got, tt.want)
		}
	}
}

func TestPlanSavings(t *testing.T) {
	tests := []struct {
		name       string
		difference float64
		goal       float64
		want       models.SavingsPlan
	}{
		{
			name:       "rounds months up",
			difference: -100,
			goal:       120,
			want:       models.SavingsPlan{Goal: 120, MonthlySavings: 50, Reachable: true, MonthsNeeded: 3, TargetDate: "2024-07-01"},
		},
		{
			name:       "exact multiple",
			difference: -100,
			goal:       100,
			want:       models.SavingsPlan{Goal: 100, MonthlySavings: 50, Reachable: true, MonthsNeeded: 2, TargetDate: "2024-05-31"},
		},
		{
			name:       "zero goal is reached now",
			difference: -100,
			goal:       0,
			want:       models.SavingsPlan{Goal: 0, MonthlySavings: 50, Reachable: true, MonthsNeeded: 0, TargetDate: "2024-03-31"},
		},
		{
			name:       "over budget cannot save",
			difference: 10,
			goal:       100,
			want:       models.SavingsPlan{Goal: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanSavings(models.MonthlyForecast{Difference: tt.difference}, tt.goal, now)
			if got != tt.want {
				t.Errorf("PlanSavings = %+v, want %+v", got, tt.want)
			}
		})
	}
}

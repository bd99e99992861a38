package analytics

import (
	"math"
	"time"

	"github.com/mmynk/budgetwise/internal/models"
)

const (
	// trendWindowDays is the length of each of the two periods SpendingTrend compares.
	trendWindowDays = 15

	// minTrendExpenses is the fewest expenses SpendingTrend needs to report a direction.
	minTrendExpenses = 10

	// trendThresholdPercent is the change beyond which spending counts as moving.
	trendThresholdPercent = 5.0

	// forecastWindowDays is how far back Forecast looks for daily spending.
	forecastWindowDays = 30

	// savingsShare is the part of a projected surplus suggested for saving.
	savingsShare = 0.5

	// fallbackTopCategory is reported when the month has no spending.
	fallbackTopCategory = "Other"
)

// AnalyzeSpendingTrend compares spending in [now-15d, now] with [now-30d, now-15d).
// It reports neutral when fewer than 10 expenses are given or the older period is empty.
func AnalyzeSpendingTrend(expenses []models.Expense, now time.Time) models.SpendingTrend {
	today := truncateDay(now)
	todayKey := models.FormatDate(today)
	recentStart := models.FormatDate(today.AddDate(0, 0, -trendWindowDays))
	olderStart := models.FormatDate(today.AddDate(0, 0, -2*trendWindowDays))

	var result models.SpendingTrend
	for _, e := range expenses {
		switch {
		case e.Date >= recentStart && e.Date <= todayKey:
			result.RecentTotal += e.Amount
		case e.Date >= olderStart && e.Date < recentStart:
			result.OlderTotal += e.Amount
		}
	}

	result.Trend = models.TrendNeutral
	if len(expenses) < minTrendExpenses || result.OlderTotal == 0 {
		return result
	}

	change := (result.RecentTotal - result.OlderTotal) / result.OlderTotal * 100
	result.Percentage = int(math.Round(math.Abs(change)))

	switch {
	case change > trendThresholdPercent:
		result.Trend = models.TrendIncreasing
	case change < -trendThresholdPercent:
		result.Trend = models.TrendDecreasing
	}

	return result
}

// CompareMonths totals the calendar month containing now and the month before it.
func CompareMonths(expenses []models.Expense, now time.Time) models.MonthComparison {
	curStart, curEnd := monthBounds(now, 0)
	prevStart, prevEnd := monthBounds(now, -1)

	var result models.MonthComparison
	for _, e := range expenses {
		switch {
		case e.Date >= curStart && e.Date <= curEnd:
			result.CurrentMonth += e.Amount
		case e.Date >= prevStart && e.Date <= prevEnd:
			result.PreviousMonth += e.Amount
		}
	}

	result.Difference = result.CurrentMonth - result.PreviousMonth
	if result.PreviousMonth != 0 {
		result.PercentageChange = int(math.Round(result.Difference / result.PreviousMonth * 100))
	}

	return result
}

// ForecastMonth projects this month's spending from a recency-weighted average
// of the last 30 days of expenses. Each expense is weighted by 1/max(1, days ago).
// The average is a weighted mean expense amount rather than a per-day total; it is
// multiplied by the days in the month to get the forecast.
func ForecastMonth(expenses []models.Expense, now time.Time, dailyBudget float64) models.MonthlyForecast {
	today := truncateDay(now)
	windowStart := models.FormatDate(today.AddDate(0, 0, -forecastWindowDays))

	var weightedTotal, weightSum float64
	days := make(map[string]struct{})
	for _, e := range expenses {
		if e.Date < windowStart {
			continue
		}
		date, err := time.ParseInLocation(models.DateLayout, e.Date, today.Location())
		if err != nil {
			continue
		}

		ago := int(math.Round(today.Sub(date).Hours() / 24))
		if ago < 1 {
			ago = 1
		}
		weight := 1 / float64(ago)
		weightedTotal += e.Amount * weight
		weightSum += weight
		days[e.Date] = struct{}{}
	}

	var avg float64
	if weightSum > 0 {
		avg = weightedTotal / weightSum
	}

	daysInMonth := float64(daysIn(today))
	forecast := models.MonthlyForecast{
		AverageDaily:       avg,
		ForecastedSpending: avg * daysInMonth,
		Budget:             dailyBudget * daysInMonth,
		Confidence:         int(math.Min(100, math.Round(float64(len(days))/forecastWindowDays*100))),
	}
	forecast.Difference = forecast.ForecastedSpending - forecast.Budget
	forecast.TopCategory = TopCategory(expenses, now)
	forecast.SavingsPotential = SavingsPotential(forecast)

	return forecast
}

// TopCategory returns the category with the highest total in the calendar month
// containing now. It returns "Other" when the month has no spending. Ties go to the
// category seen first.
func TopCategory(expenses []models.Expense, now time.Time) string {
	start, end := monthBounds(now, 0)

	var order []string
	totals := make(map[string]float64)
	for _, e := range expenses {
		if e.Date < start || e.Date > end {
			continue
		}
		if _, ok := totals[e.Category]; !ok {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	top, best := fallbackTopCategory, 0.0
	for _, category := range order {
		if totals[category] > best {
			top, best = category, totals[category]
		}
	}
	return top
}

// SavingsPotential suggests saving half of the projected surplus.
// Nothing can be saved when the forecast meets or exceeds the budget.
func SavingsPotential(f models.MonthlyForecast) float64 {
	if f.Difference >= 0 {
		return 0
	}
	return math.Abs(f.Difference) * savingsShare
}

// PlanSavings estimates how many whole months of SavingsPotential reach goal,
// and the date that many months after now.
func PlanSavings(f models.MonthlyForecast, goal float64, now time.Time) models.SavingsPlan {
	plan := models.SavingsPlan{
		Goal:           goal,
		MonthlySavings: SavingsPotential(f),
	}
	if plan.MonthlySavings <= 0 {
		return plan
	}

	plan.Reachable = true
	plan.MonthsNeeded = int(math.Ceil(goal / plan.MonthlySavings))
	plan.TargetDate = models.FormatDate(truncateDay(now).AddDate(0, plan.MonthsNeeded, 0))
	return plan
}

// monthBounds returns the first and last dates of the month offset months from t.
func monthBounds(t time.Time, offset int) (string, string) {
	first := time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return models.FormatDate(first), models.FormatDate(last)
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

package analytics

import (
	"time"

	"github.com/mmynk/budgetwise/internal/models"
)

// BuildTrendSeries computes a daily spending series over [start, end] inclusive.
//
// Algorithm:
//   - Seed a zero bucket for every calendar day from start to end, ascending
//   - Add each expense amount into the bucket keyed by its own Date
//   - A Date with no seeded bucket gets a new bucket appended after the seeded ones,
//     in the order such dates are first seen
//
// Statistics are computed over all buckets, including appended ones.
func BuildTrendSeries(expenses []models.Expense, start, end time.Time) models.TrendReport {
	trends := []models.TrendPoint{}
	index := make(map[string]int)

	start = truncateDay(start)
	end = truncateDay(end)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := models.FormatDate(day)
		index[key] = len(trends)
		trends = append(trends, models.TrendPoint{Date: key})
	}

	for _, e := range expenses {
		i, ok := index[e.Date]
		if !ok {
			i = len(trends)
			index[e.Date] = i
			trends = append(trends, models.TrendPoint{Date: e.Date})
		}
		trends[i].Amount += e.Amount
	}

	return models.TrendReport{
		Trends:     trends,
		Statistics: trendStatistics(trends),
	}
}

// trendStatistics summarizes the buckets. Zero-amount days never count toward the minimum.
func trendStatistics(trends []models.TrendPoint) models.TrendStatistics {
	var stats models.TrendStatistics
	if len(trends) == 0 {
		return stats
	}

	stats.MaximumDaily = trends[0].Amount
	for _, p := range trends {
		stats.TotalAmount += p.Amount
		if p.Amount > stats.MaximumDaily {
			stats.MaximumDaily = p.Amount
		}
		if p.Amount > 0 && (stats.MinimumDaily == 0 || p.Amount < stats.MinimumDaily) {
			stats.MinimumDaily = p.Amount
		}
	}
	stats.AverageDaily = stats.TotalAmount / float64(len(trends))

	return stats
}

// truncateDay drops the time of day while keeping the location of t.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

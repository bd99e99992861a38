package analytics

import (
	"sort"

	"github.com/mmynk/budgetwise/internal/models"
)

// BuildBreakdown totals expenses per category and ranks categories by amount, largest first.
// Each percentage is the category's share of the grand total, or 0 when the total is 0.
// Categories with equal amounts keep the order in which they were first seen.
func BuildBreakdown(expenses []models.Expense) models.Breakdown {
	entries := []models.BreakdownEntry{}
	index := make(map[string]int)
	var total float64

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(entries)
			index[e.Category] = i
			entries = append(entries, models.BreakdownEntry{Category: e.Category})
		}
		entries[i].Amount += e.Amount
		total += e.Amount
	}

	for i := range entries {
		if total > 0 {
			entries[i].Percentage = entries[i].Amount / total * 100
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount > entries[j].Amount
	})

	return models.Breakdown{
		Breakdown:   entries,
		TotalAmount: total,
	}
}

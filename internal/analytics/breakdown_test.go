package analytics

import (
	"math"
	"testing"

	"github.com/mmynk/budgetwise/internal/models"
)

func TestBuildBreakdown(t *testing.T) {
	t.Run("percentages sum to 100 sorted by amount", func(t *testing.T) {
		b := BuildBreakdown([]models.Expense{
			{Amount: 30, Category: "A"},
			{Amount: 50, Category: "B"},
			{Amount: 20, Category: "B"},
		})

		if len(b.Breakdown) != 2 {
			t.Fatalf("entries = %d, want 2", len(b.Breakdown))
		}
		if b.Breakdown[0].Category != "B" || b.Breakdown[1].Category != "A" {
			t.Errorf("order = [%s %s], want [B A]", b.Breakdown[0].Category, b.Breakdown[1].Category)
		}
		if math.Abs(b.Breakdown[0].Percentage-70) > 0.001 {
			t.Errorf("B percentage = %v, want 70", b.Breakdown[0].Percentage)
		}
		if math.Abs(b.Breakdown[1].Percentage-30) > 0.001 {
			t.Errorf("A percentage = %v, want 30", b.Breakdown[1].Percentage)
		}
		if b.TotalAmount != 100 {
			t.Errorf("total = %v, want 100", b.TotalAmount)
		}

		var sum float64
		for _, e := range b.Breakdown {
			sum += e.Percentage
		}
		if math.Abs(sum-100) > 0.001 {
			t.Errorf("percentages sum = %v, want 100", sum)
		}
	})

	t.Run("no expenses", func(t *testing.T) {
		b := BuildBreakdown(nil)
		if b.Breakdown == nil || len(b.Breakdown) != 0 {
			t.Errorf("breakdown = %#v, want empty slice", b.Breakdown)
		}
		if b.TotalAmount != 0 {
			t.Errorf("total = %v, want 0", b.TotalAmount)
		}
	})

	t.Run("ties keep first seen order", func(t *testing.T) {
		b := BuildBreakdown([]models.Expense{
			{Amount: 10, Category: "Z"},
			{Amount: 10, Category: "M"},
			{Amount: 10, Category: "A"},
			{Amount: 40, Category: "Top"},
		})

		want := []string{"Top", "Z", "M", "A"}
		for i, e := range b.Breakdown {
			if e.Category != want[i] {
				t.Errorf("entry %d = %s, want %s", i, e.Category, want[i])
			}
		}
	})
}

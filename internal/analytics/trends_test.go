package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/budgetwise/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildTrendSeries(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []models.Expense
		start, end   string
		validateFunc func(t *testing.T, r models.TrendReport)
	}{
		{
			name:  "two day window with no expenses",
			start: "2024-03-13",
			end:   "2024-03-15",
			validateFunc: func(t *testing.T, r models.TrendReport) {
				want := []string{"2024-03-13", "2024-03-14", "2024-03-15"}
				if len(r.Trends) != len(want) {
					t.Fatalf("buckets = %d, want %d", len(r.Trends), len(want))
				}
				for i, p := range r.Trends {
					if p.Date != want[i] || p.Amount != 0 {
						t.Errorf("bucket %d = %+v, want zero on %s", i, p, want[i])
					}
				}
				if r.Statistics != (models.TrendStatistics{}) {
					t.Errorf("statistics = %+v, want all zero", r.Statistics)
				}
			},
		},
		{
			name: "minimum ignores zero days",
			expenses: []models.Expense{
				{Amount: 20, Date: "2024-03-14"},
				{Amount: 10, Date: "2024-03-13"},
			},
			start: "2024-03-13",
			end:   "2024-03-15",
			validateFunc: func(t *testing.T, r models.TrendReport) {
				s := r.Statistics
				if s.MinimumDaily != 10 {
					t.Errorf("minimum = %v, want 10", s.MinimumDaily)
				}
				if s.MaximumDaily != 20 {
					t.Errorf("maximum = %v, want 20", s.MaximumDaily)
				}
				if s.TotalAmount != 30 {
					t.Errorf("total = %v, want 30", s.TotalAmount)
				}
				if math.Abs(s.AverageDaily-10) > 0.001 {
					t.Errorf("average = %v, want 10", s.AverageDaily)
				}
			},
		},
		{
			name: "same day amounts accumulate",
			expenses: []models.Expense{
				{Amount: 2.5, Date: "2024-03-15"},
				{Amount: 4, Date: "2024-03-15"},
			},
			start: "2024-03-14",
			end:   "2024-03-15",
			validateFunc: func(t *testing.T, r models.TrendReport) {
				if got := r.Trends[1].Amount; math.Abs(got-6.5) > 0.001 {
					t.Errorf("2024-03-15 amount = %v, want 6.5", got)
				}
			},
		},
		{
			name: "out of range date appends bucket at end",
			expenses: []models.Expense{
				{Amount: 5, Date: "2024-03-01"},
				{Amount: 3, Date: "2024-03-14"},
				{Amount: 1, Date: "2024-03-01"},
			},
			start: "2024-03-14",
			end:   "2024-03-15",
			validateFunc: func(t *testing.T, r models.TrendReport) {
				if len(r.Trends) != 3 {
					t.Fatalf("buckets = %d, want 3", len(r.Trends))
				}
				last := r.Trends[2]
				if last.Date != "2024-03-01" || last.Amount != 6 {
					t.Errorf("appended bucket = %+v, want 6 on 2024-03-01", last)
				}
				if r.Statistics.TotalAmount != 9 {
					t.Errorf("total = %v, want 9", r.Statistics.TotalAmount)
				}
			},
		},
		{
			name:  "start after end yields no buckets",
			start: "2024-03-16",
			end:   "2024-03-15",
			validateFunc: func(t *testing.T, r models.TrendReport) {
				if len(r.Trends) != 0 {
					t.Errorf("buckets = %d, want 0", len(r.Trends))
				}
				if r.Statistics.AverageDaily != 0 {
					t.Errorf("average = %v, want 0", r.Statistics.AverageDaily)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildTrendSeries(tt.expenses, day(tt.start), day(tt.end))
			tt.validateFunc(t, r)
		})
	}
}

func TestBuildTrendSeries_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.March, 13, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC)

	r := BuildTrendSeries(nil, start, end)
	if len(r.Trends) != 3 {
		t.Errorf("buckets = %d, want 3", len(r.Trends))
	}
}

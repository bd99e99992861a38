package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/budgetwise/internal/cli"
	"github.com/mmynk/budgetwise/internal/models"
)

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Total spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				summary, err := e.engine.Summary(cmd.Context())
				if err != nil {
					return err
				}
				if len(summary) == 0 {
					fmt.Fprintln(e.out, cli.RenderMuted("\n  No expenses recorded yet."))
					return nil
				}

				var total float64
				rows := make([][]string, 0, len(summary)+2)
				for _, s := range summary {
					total += s.Total
					rows = append(rows, []string{s.Category, cli.FormatMoney(s.Total)})
				}
				rows = append(rows, cli.Separator(), []string{"Total", cli.FormatMoney(total)})

				fmt.Fprintln(e.out, cli.RenderTitle("SPENDING BY CATEGORY"))
				fmt.Fprint(e.out, cli.RenderTable(cli.Table{
					Headers: []string{"Category", "Total"},
					Rows:    rows,
				}))
				return nil
			})
		},
	}
}

func (a *app) trendsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Daily spending series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				if !cmd.Flags().Changed("days") {
					days = e.cfg.Analytics.TrendDays
				}

				report, err := e.engine.Trends(cmd.Context(), days)
				if err != nil {
					return err
				}

				values := make([]float64, 0, len(report.Trends))
				rows := make([][]string, 0, len(report.Trends)+5)
				for _, p := range report.Trends {
					values = append(values, p.Amount)
					rows = append(rows, []string{p.Date, cli.FormatMoney(p.Amount)})
				}
				stats := report.Statistics
				rows = append(rows, cli.Separator(),
					[]string{"Total", cli.FormatMoney(stats.TotalAmount)},
					[]string{"Average/day", cli.FormatMoney(stats.AverageDaily)},
					[]string{"Highest day", cli.FormatMoney(stats.MaximumDaily)},
					[]string{"Lowest day", cli.FormatMoney(stats.MinimumDaily)},
				)

				fmt.Fprintln(e.out, cli.RenderTitle(fmt.Sprintf("DAILY SPENDING  Last %dd", days)))
				fmt.Fprintf(e.out, "  %s\n", cli.RenderSparkline(values))
				fmt.Fprint(e.out, cli.RenderTable(cli.Table{
					Headers: []string{"Date", "Amount"},
					Rows:    rows,
				}))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&days, "days", "n", 0, "Days before today to include (default from config)")

	return cmd
}

func (a *app) breakdownCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Share of spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				if !cmd.Flags().Changed("days") {
					days = e.cfg.Analytics.BreakdownDays
				}

				breakdown, err := e.engine.CategoryBreakdown(cmd.Context(), days)
				if err != nil {
					return err
				}
				if len(breakdown.Breakdown) == 0 {
					fmt.Fprintln(e.out, cli.RenderMuted(fmt.Sprintf("\n  No expenses in the last %d days.", days)))
					return nil
				}

				rows := make([][]string, 0, len(breakdown.Breakdown)+2)
				for _, b := range breakdown.Breakdown {
					rows = append(rows, []string{
						b.Category,
						cli.FormatMoney(b.Amount),
						cli.FormatPercent(b.Percentage),
						cli.RenderBar(b.Percentage, 20),
					})
				}
				rows = append(rows, cli.Separator(), []string{"Total", cli.FormatMoney(breakdown.TotalAmount), "", ""})

				fmt.Fprintln(e.out, cli.RenderTitle(fmt.Sprintf("CATEGORY BREAKDOWN  Last %dd", days)))
				fmt.Fprint(e.out, cli.RenderTable(cli.Table{
					Headers: []string{"Category", "Amount", "Share", ""},
					Rows:    rows,
				}))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&days, "days", "n", 0, "Days before today to include (default from config)")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "This month against last month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				cmp, err := e.engine.CompareMonths(cmd.Context())
				if err != nil {
					return err
				}

				trend, err := e.engine.SpendingTrend(cmd.Context())
				if err != nil {
					return err
				}

				fmt.Fprintln(e.out, cli.RenderTitle("MONTH OVER MONTH"))
				fmt.Fprint(e.out, cli.RenderTable(cli.Table{
					Rows: [][]string{
						{"This month", cli.FormatMoney(cmp.CurrentMonth)},
						{"Last month", cli.FormatMoney(cmp.PreviousMonth)},
						{"Difference", cli.RenderDelta(cli.FormatSignedMoney(cmp.Difference), cmp.Difference)},
						{"Change", fmt.Sprintf("%d%%", cmp.PercentageChange)},
						cli.Separator(),
						{"15-day trend", fmt.Sprintf("%s (%d%%)", trend.Trend, trend.Percentage)},
					},
				}))
				return nil
			})
		},
	}
}

func (a *app) forecastCmd() *cobra.Command {
	var dailyBudget, goal float64

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Projected spending for this month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				if !cmd.Flags().Changed("budget") {
					dailyBudget = e.cfg.Analytics.DailyBudget
				}

				var (
					f   models.MonthlyForecast
					err error
				)
				if cmd.Flags().Changed("goal") {
					f, err = e.engine.PlanSavings(cmd.Context(), dailyBudget, goal)
				} else {
					f, err = e.engine.Forecast(cmd.Context(), dailyBudget)
				}
				if err != nil {
					return err
				}

				rows := [][]string{
					{"Average expense", cli.FormatMoney(f.AverageDaily)},
					{"Forecast", cli.FormatMoney(f.ForecastedSpending)},
					{"Budget", cli.FormatMoney(f.Budget)},
					{"Over budget", cli.RenderDelta(cli.FormatSignedMoney(f.Difference), f.Difference)},
					{"Confidence", fmt.Sprintf("%d%%", f.Confidence)},
					cli.Separator(),
					{"Top category", f.TopCategory},
					{"Could save", cli.FormatMoney(f.SavingsPotential) + "/month"},
				}
				if plan := f.SavingsGoal; plan != nil {
					target := "not reachable at current spending"
					if plan.Reachable {
						target = fmt.Sprintf("%s (%d months)", plan.TargetDate, plan.MonthsNeeded)
					}
					rows = append(rows, []string{"Goal " + cli.FormatMoney(plan.Goal), target})
				}

				fmt.Fprintln(e.out, cli.RenderTitle("MONTHLY FORECAST"))
				fmt.Fprint(e.out, cli.RenderTable(cli.Table{Rows: rows}))
				return nil
			})
		},
	}
	cmd.Flags().Float64VarP(&dailyBudget, "budget", "b", 0, "Daily budget (default from config)")
	cmd.Flags().Float64VarP(&goal, "goal", "g", 0, "Savings goal to plan for")

	return cmd
}

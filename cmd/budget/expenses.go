package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/budgetwise/internal/cli"
	"github.com/mmynk/budgetwise/internal/models"
)

func (a *app) addCmd() *cobra.Command {
	var description, date string

	cmd := &cobra.Command{
		Use:   "add AMOUNT CATEGORY",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := models.ParseAmount(args[0])
			if err != nil {
				return err
			}

			return a.run(cmd, func(e *env) error {
				id, err := e.store.AddExpense(cmd.Context(), models.NewExpense{
					Amount:      amount,
					Category:    args[1],
					Description: description,
					Date:        date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(e.out, "  Added expense #%d: %s %s\n", id, cli.FormatMoney(amount), args[1])
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Free-form note")
	cmd.Flags().StringVar(&date, "date", "", "Expense date YYYY-MM-DD (default today)")

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var filter models.ExpenseFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				expenses, err := e.store.ListExpenses(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if len(expenses) == 0 {
					fmt.Fprintln(e.out, cli.RenderMuted("\n  No expenses found."))
					return nil
				}

				var total float64
				rows := make([][]string, 0, len(expenses)+2)
				for _, x := range expenses {
					total += x.Amount
					rows = append(rows, []string{
						strconv.FormatInt(x.ID, 10),
						x.Date,
						x.Category,
						x.Description,
						cli.FormatMoney(x.Amount),
					})
				}
				rows = append(rows, cli.Separator(), []string{"", "", "", "Total", cli.FormatMoney(total)})

				fmt.Fprint(e.out, cli.RenderTable(cli.Table{
					Headers: []string{"ID", "Date", "Category", "Description", "Amount"},
					Rows:    rows,
				}))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&filter.Category, "category", "c", "", "Only this category")
	cmd.Flags().StringVar(&filter.StartDate, "from", "", "Earliest date, inclusive")
	cmd.Flags().StringVar(&filter.EndDate, "to", "", "Latest date, inclusive")
	cmd.Flags().IntVarP(&filter.Limit, "limit", "n", 0, "Maximum rows (0 = all)")

	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			return a.run(cmd, func(e *env) error {
				deleted, err := e.store.DeleteExpense(cmd.Context(), id)
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("expense not found: %d", id)
				}
				fmt.Fprintf(e.out, "  Deleted expense #%d\n", id)
				return nil
			})
		},
	}
}

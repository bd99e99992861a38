package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/budgetwise/internal/cli"
	"github.com/mmynk/budgetwise/internal/storage"
)

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(e *env) error {
				categories, err := e.store.ListCategories(cmd.Context())
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(categories))
				for _, c := range categories {
					rows = append(rows, []string{c.Name, strconv.FormatInt(c.ID, 10)})
				}
				fmt.Fprint(e.out, cli.RenderTable(cli.Table{
					Headers: []string{"Name", "ID"},
					Rows:    rows,
				}))
				return nil
			})
		},
	}
}

func (a *app) categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(e *env) error {
				id, err := e.store.AddCategory(cmd.Context(), args[0])
				if errors.Is(err, storage.ErrCategoryExists) {
					return fmt.Errorf("category %q already exists", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(e.out, "  Added category %q (#%d)\n", args[0], id)
				return nil
			})
		},
	})

	return cmd
}

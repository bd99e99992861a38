package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/budgetwise/internal/analytics"
	"github.com/mmynk/budgetwise/internal/config"
	"github.com/mmynk/budgetwise/internal/storage/sqlite"
	"github.com/mmynk/budgetwise/pkg/logging"
)

// app holds the persistent flags shared by every subcommand.
type app struct {
	dbPath     string
	configPath string
	now        func() time.Time
}

// env is what a subcommand gets once config and storage are ready.
type env struct {
	cfg    config.Config
	store  *sqlite.SQLiteStore
	engine *analytics.Engine
	out    io.Writer
}

// newRootCmd builds the command tree. now is the clock used for "today".
func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	root := &cobra.Command{
		Use:          "budget",
		Short:        "Personal budget tracker",
		Long:         "Record expenses against categories and review totals, trends and forecasts.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database file (default from config)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML config file (overrides BUDGET_CONFIG)")

	root.AddCommand(
		a.addCmd(),
		a.listCmd(),
		a.deleteCmd(),
		a.categoriesCmd(),
		a.categoryCmd(),
		a.summaryCmd(),
		a.trendsCmd(),
		a.breakdownCmd(),
		a.compareCmd(),
		a.forecastCmd(),
	)

	return root
}

// run loads config, opens the store and hands both to fn. The store is closed afterwards.
func (a *app) run(cmd *cobra.Command, fn func(e *env) error) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Storage.DBPath = a.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.Logging.Level))

	store, err := sqlite.New(cfg.Storage.DBPath, sqlite.WithClock(a.now))
	if err != nil {
		return fmt.Errorf("opening %s: %w", cfg.Storage.DBPath, err)
	}
	defer store.Close()

	return fn(&env{
		cfg:    cfg,
		store:  store,
		engine: analytics.NewEngine(store, a.now),
		out:    cmd.OutOrStdout(),
	})
}

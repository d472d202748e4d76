package main

import (
	"fmt"
	"log/slog"
	"os"

	"restaurant-orders/auth"
	"restaurant-orders/config"
	"restaurant-orders/store"

	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	dbPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "restaurant",
		Short: "Restaurant ordering data with integrity-checked CRUD and relational queries",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if dbPath != "" {
				cfg.DB.Path = dbPath
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.Log.Level,
			})))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (default $DB_PATH or restaurant.db)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newReportCmd())
	return root
}

// openStore connects to the configured database. The returned close func
// releases the connection pool.
func openStore() (*store.Store, func(), error) {
	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	var opts []store.Option
	if cfg.Strict {
		opts = append(opts, store.WithStrictReferences())
	}
	closeDB := func() {
		if err := config.CloseDB(db); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}
	return store.New(db, opts...), closeDB, nil
}

func newGate() (auth.Gate, error) {
	gate, err := auth.NewStaticGate(cfg.Auth.Users)
	if err != nil {
		return nil, fmt.Errorf("build auth gate: %w", err)
	}
	return gate, nil
}

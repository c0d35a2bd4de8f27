// Command househub administers a household database directly, without a
// running server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/househub/internal/chores"
	"github.com/mmynk/househub/internal/config"
	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/storage/sqlite"
	"github.com/mmynk/househub/pkg/logging"
)

var Version = "dev"

// app carries the persistent flags shared by every subcommand.
type app struct {
	dbPath    string
	namespace string
	logLevel  string
}

// services is the domain layer over one opened store.
type services struct {
	store    *sqlite.SQLiteStore
	registry *household.Registry
	chores   *chores.Service
}

func (a *app) open() (*services, error) {
	store, err := sqlite.New(a.dbPath, a.namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", a.dbPath, err)
	}
	registry := household.NewRegistry(store)
	return &services{
		store:    store,
		registry: registry,
		chores:   chores.NewService(store, registry),
	}, nil
}

func newRootCmd() *cobra.Command {
	defaults := config.Default()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "househub",
		Short:         "Househub - shared household chores, money and calendar",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(a.logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", defaults.DatabasePath, "SQLite database path")
	rootCmd.PersistentFlags().StringVarP(&a.namespace, "namespace", "n", defaults.Namespace, "Household namespace")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(statusCmd(a))
	rootCmd.AddCommand(advanceWeekCmd(a))
	rootCmd.AddCommand(boardCmd(a))
	rootCmd.AddCommand(roommatesCmd(a))
	rootCmd.AddCommand(roomsCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

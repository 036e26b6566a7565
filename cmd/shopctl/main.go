// Command shopctl operates the shop bot store and replays conversations locally.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"shopbot/config"
	logs "shopbot/internal/infra/log"
	"shopbot/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var sqlitePath string

var rootCmd = &cobra.Command{
	Use:           "shopctl",
	Short:         "Operate the shop bot store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite", "",
		"use a SQLite database file instead of the configured PostgreSQL")

	rootCmd.AddCommand(migrateCmd, seedCmd, hashPasswordCmd, chatCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// environment is what every store-backed subcommand needs.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

// openEnvironment loads config, builds the logger and opens a migrated store.
func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}
	logger, err := logs.NewWithWriter(os.Stderr, cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	if sqlitePath != "" {
		db, err = postgres.OpenSQLite(ctx, sqlitePath, logger, cfg.Env.Debug)
	} else {
		db, err = postgres.Open(cfg, logger)
	}
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, logger: logger, db: db}, nil
}

func (env *environment) close() {
	if sqlDB, err := env.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

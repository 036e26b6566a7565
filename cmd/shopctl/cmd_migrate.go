package main

import (
	"shopbot/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment(cmd.Context())
	if err != nil {
		return err
	}
	defer env.close()

	if err := postgres.Migrate(cmd.Context(), env.db); err != nil {
		return err
	}

	cmd.Printf("Schema is up to date (%s)\n", env.db.Name())

	return nil
}

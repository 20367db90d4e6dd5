package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dbadapter "planner/internal/adapter/db"
)

func migrateCmd() *cobra.Command {
	var withSeed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		Long: `Apply every embedded up migration in order.

Migrations are idempotent, so running this against an existing database is safe.
Seed data is skipped unless --seed is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			defer closeDB(db)

			applied, err := dbadapter.Migrate(cmd.Context(), db, withSeed)
			for _, file := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", file)
			}
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSeed, "seed", false, "also load the sample tasks")

	return cmd
}

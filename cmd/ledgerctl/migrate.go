package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/internal/platform/config"
	"github.com/vanditmehta007/EagleEyed-MicroManageYourFinances-sub001/pkg/database"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Apply every pending migration, or roll migrations back with --down.

--down 0 rolls back everything.`,
		RunE: runMigrate,
	}

	cmd.Flags().Int("down", -1, "roll back this many migrations instead of migrating up (0 = all)")
	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	down, _ := cmd.Flags().GetInt("down")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.Default()
	var changed bool
	if down >= 0 {
		changed, err = database.MigrateDown(cfg.DatabaseURL, cfg.MigrationsPath, down, logger)
	} else {
		changed, err = database.MigrateUp(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	}
	if err != nil {
		return err
	}

	if changed {
		fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Database already up to date.")
	}
	return nil
}

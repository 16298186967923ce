package cli

import (
	"fmt"

	"github.com/SscSPs/bookkeeping_core/internal/platform/config"
	"github.com/SscSPs/bookkeeping_core/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			if a.cfg.StorageDriver != config.StoragePostgres {
				return fmt.Errorf("migrate requires the %s storage driver, got %q", config.StoragePostgres, a.cfg.StorageDriver)
			}

			applied, err := database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.logger)
			if err != nil {
				return err
			}
			if applied {
				a.printf(cmd, "Database migrations applied.\n")
			} else {
				a.printf(cmd, "No new migrations to apply.\n")
			}
			return nil
		},
	}
}

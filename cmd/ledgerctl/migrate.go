package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarzasiphix/ksef-ai-sub008/internal/platform/config"
	"github.com/quarzasiphix/ksef-ai-sub008/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate <up|down>",
	Short:     "Apply or roll back database migrations",
	GroupID:   "system",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StorageDriver != config.StorageDriverPostgres {
			return fmt.Errorf("migrations need STORAGE_DRIVER=%s", config.StorageDriverPostgres)
		}
		direction := database.MigrationDirection(args[0])
		if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger); err != nil {
			return err
		}
		fmt.Printf("Migrations %s complete.\n", direction)
		return nil
	},
}

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttbdata/ecfr-sync/database"
	"github.com/ttbdata/ecfr-sync/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tool",
	Long:  `Database migration tool for managing schema versions. Use with 'up', 'down' or 'status' subcommands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Usage()
	},
}

func init() {
	migrateCmd.PersistentFlags().String("config", "", "Path to configuration file (YAML format, required)")
	if err := migrateCmd.MarkPersistentFlagRequired("config"); err != nil {
		panic(err)
	}

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// migratorFromFlag builds a migrator for the configured database file
func migratorFromFlag(cmd *cobra.Command) (database.Migrator, *config.Config, error) {
	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return nil, nil, err
	}
	m, err := database.NewFromDBPath(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	return m, cfg, nil
}

package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back database migrations",
	Long: `Roll back database migrations. By default one step is rolled back;
--all drops the schema entirely. Rolling back deletes data.`,
	RunE: runMigrateDown,
}

func init() {
	migrateDownCmd.Flags().Bool("all", false, "Roll back all migrations")
	migrateDownCmd.Flags().BoolP("yes", "y", false, "Answer yes to all questions")
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	yes, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return fmt.Errorf("failed to get yes flag: %w", err)
	}

	m, cfg, err := migratorFromFlag(cmd)
	if err != nil {
		return err
	}

	if !yes {
		fmt.Printf("About to roll back migrations on %s. Continue? (yes/no): ", cfg.Database.Path)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}
		if response != "yes" && response != "y" {
			log.Info("Rollback cancelled by user")
			return nil
		}
	}

	if all {
		if err := m.Down(); err != nil {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}
		log.Info("All migrations rolled back", zap.String("path", cfg.Database.Path))
		return nil
	}

	if err := m.Steps(-1); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	log.Info("Rolled back one migration", zap.String("path", cfg.Database.Path))
	return nil
}

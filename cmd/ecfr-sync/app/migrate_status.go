package app

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current schema version",
	RunE:  runMigrateStatus,
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	m, cfg, err := migratorFromFlag(cmd)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info("No migrations applied yet", zap.String("path", cfg.Database.Path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	log.Info("Schema version",
		zap.String("path", cfg.Database.Path),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

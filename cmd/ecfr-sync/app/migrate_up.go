package app

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending database migrations",
	Long: `Apply all pending database migrations to bring the schema up to date.
The database file path is read from the configuration file; the file is
created if it does not exist yet.`,
	RunE: runMigrateUp,
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	m, cfg, err := migratorFromFlag(cmd)
	if err != nil {
		return err
	}

	log.Info("Applying database migrations", zap.String("path", cfg.Database.Path))
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		log.Warn("Unable to get migration version", zap.Error(err))
		return nil
	}
	if dirty {
		log.Warn("Database is in a dirty state", zap.Uint("version", version))
		return nil
	}
	log.Info("Migrations applied successfully", zap.Uint("version", version))
	return nil
}

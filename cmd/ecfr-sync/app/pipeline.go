package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ttbdata/ecfr-sync/database"
	"github.com/ttbdata/ecfr-sync/internal/config"
	"github.com/ttbdata/ecfr-sync/internal/db"
	"github.com/ttbdata/ecfr-sync/internal/ecfr"
	"github.com/ttbdata/ecfr-sync/internal/httpclient"
	"github.com/ttbdata/ecfr-sync/internal/storage"
	"github.com/ttbdata/ecfr-sync/internal/sync"
	"github.com/ttbdata/ecfr-sync/internal/sync/writer"
	"github.com/ttbdata/ecfr-sync/internal/telemetry"
)

// pipeline bundles the wired collaborators a command needs
type pipeline struct {
	cfg     *config.Config
	conn    *db.Connection
	manager sync.Manager
	metrics *telemetry.Metrics
}

func (p *pipeline) close() {
	if err := p.conn.Close(); err != nil {
		log.Error("Error closing database connection", zap.Error(err))
	}
}

// loadConfigFromFlag reads the --config flag and loads the configuration
func loadConfigFromFlag(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.LoadConfig(config.WithConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// ensureSchema applies any pending migrations to the configured database.
// An up-to-date schema is not an error.
func ensureSchema(cfg *config.Config) error {
	m, err := database.NewFromDBPath(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// buildPipeline assembles the full sync pipeline from configuration
func buildPipeline(cfg *config.Config) (*pipeline, error) {
	if err := ensureSchema(cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewConnection(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	timeout, err := apiTimeout(cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	w, err := writer.NewDBSyncWriter(conn.DB, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	metrics := telemetry.NewMetrics()

	manager, err := sync.NewManager(
		cfg,
		ecfr.NewClient(httpclient.NewDefaultClient(timeout), cfg.API.Endpoint, log),
		w,
		storage.NewFileManager(cfg.DataDir),
		conn.Queries,
		metrics,
		log,
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create sync manager: %w", err)
	}

	return &pipeline{
		cfg:     cfg,
		conn:    conn,
		manager: manager,
		metrics: metrics,
	}, nil
}

func apiTimeout(cfg *config.Config) (time.Duration, error) {
	if cfg.API.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(cfg.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api timeout %q: %w", cfg.API.Timeout, err)
	}
	return timeout, nil
}

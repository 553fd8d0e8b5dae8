// Package db contains code for connecting to the database.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Needs to be imported for the sqlite driver

	"github.com/ttbdata/ecfr-sync/internal/config"
	"github.com/ttbdata/ecfr-sync/internal/db/sqlc"
)

const (
	// The sync writer holds long transactions; a single writer connection
	// avoids SQLITE_BUSY contention between the writer and the read API.
	defaultMaxOpenConns   = 1
	defaultBusyTimeout    = 5 * time.Second
	defaultConnMaxLifetime = 0 // connections to an embedded file never go stale
)

// Connection wraps the database handle and query interface
type Connection struct {
	DB      *sql.DB
	Queries *sqlc.Queries

	logger *zap.Logger
}

// NewConnection opens (and creates if needed) the SQLite database described by
// the provided configuration.
func NewConnection(cfg *config.DatabaseConfig, logger *zap.Logger) (*Connection, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration is required")
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	maxOpenConns := cfg.MaxOpenConns
	if maxOpenConns == 0 {
		maxOpenConns = defaultMaxOpenConns
	}

	busyTimeout := defaultBusyTimeout
	if cfg.BusyTimeout != "" {
		duration, err := time.ParseDuration(cfg.BusyTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid busy timeout: %w", err)
		}
		busyTimeout = duration
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(wal)",
		cfg.Path, busyTimeout.Milliseconds())

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(defaultConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Error("Failed to close database after ping failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", zap.String("path", cfg.Path))

	return &Connection{
		DB:      sqlDB,
		Queries: sqlc.New(sqlDB),
		logger:  logger,
	}, nil
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.DB != nil {
		c.logger.Info("Closing database connection")
		return c.DB.Close()
	}
	return nil
}

// Ping verifies the database connection is still alive
func (c *Connection) Ping() error {
	if c.DB != nil {
		return c.DB.Ping()
	}
	return fmt.Errorf("database connection is nil")
}

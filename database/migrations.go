// Package database provides database migration tooling.
package database

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite" // Registers the sqlite database driver
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var fs embed.FS

// migrationsFromSource returns a migration source driver from the embedded migrations.
func migrationsFromSource() source.Driver {
	d, err := iofs.New(fs, "migrations")
	if err != nil {
		panic(err)
	}
	return d
}

// Migrator is the interface for the migration tooling.
type Migrator interface {
	Up() error
	Down() error
	Steps(int) error
	Version() (uint, bool, error)
}

// NewFromDBPath returns a new migration instance for the SQLite database at the
// given filesystem path.
func NewFromDBPath(dbPath string) (Migrator, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}
	d := migrationsFromSource()
	return migrate.NewWithSourceInstance("iofs", d, "sqlite://"+dbPath)
}

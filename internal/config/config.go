// Package config provides configuration loading and management for the sync service.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "ECFR"

const (
	// DefaultEndpoint is the public eCFR versioner API base URL
	DefaultEndpoint = "https://www.ecfr.gov"

	// DefaultDataDir is where raw downloaded documents are cached
	DefaultDataDir = "data"

	// DefaultDatabaseFile is the database file name inside the data directory
	DefaultDatabaseFile = "ecfr_data.db"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		// Validate the path to prevent path traversal attacks
		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// TitleNumbers is the set of CFR titles tracked by this instance
	TitleNumbers []int `yaml:"titleNumbers"`

	// API holds the upstream eCFR API settings
	API APIConfig `yaml:"api,omitempty"`

	// DataDir is the directory for cached raw documents.
	// Defaults to "data" if not specified.
	DataDir string `yaml:"dataDir,omitempty"`

	Database *DatabaseConfig `yaml:"database,omitempty"`

	SyncPolicy *SyncPolicyConfig `yaml:"syncPolicy,omitempty"`
}

// APIConfig defines the upstream API settings
type APIConfig struct {
	// Endpoint is the base URL of the eCFR API
	Endpoint string `yaml:"endpoint,omitempty"`

	// Timeout is the per-request timeout as a Go duration string
	Timeout string `yaml:"timeout,omitempty"`
}

// DatabaseConfig defines database settings for the embedded SQLite database
type DatabaseConfig struct {
	// Path is the filesystem path of the database file
	Path string `yaml:"path"`

	// BusyTimeout is how long a connection waits on a locked database,
	// as a Go duration string
	BusyTimeout string `yaml:"busyTimeout,omitempty"`

	// MaxOpenConns is the maximum number of open connections
	MaxOpenConns int `yaml:"maxOpenConns,omitempty"`
}

// SyncPolicyConfig defines automatic sync interval settings
type SyncPolicyConfig struct {
	// Interval is the minimum time between syncs of an unchanged title,
	// as a Go duration string (e.g. "24h")
	Interval string `yaml:"interval"`
}

// LoadConfig loads configuration with the given options
func LoadConfig(opts ...Option) (*Config, error) {
	loader := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loader); err != nil {
			return nil, err
		}
	}

	if loader.path == "" {
		return nil, fmt.Errorf("no configuration source provided")
	}

	data, err := os.ReadFile(loader.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Endpoint == "" {
		c.API.Endpoint = DefaultEndpoint
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(c.DataDir, DefaultDatabaseFile)
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if len(c.TitleNumbers) == 0 {
		return fmt.Errorf("at least one title number is required")
	}

	seen := make(map[int]bool, len(c.TitleNumbers))
	for _, n := range c.TitleNumbers {
		if n < 1 || n > 50 {
			return fmt.Errorf("invalid CFR title number: %d", n)
		}
		if seen[n] {
			return fmt.Errorf("duplicate title number: %d", n)
		}
		seen[n] = true
	}

	parsed, err := url.Parse(c.API.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid API endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("API endpoint must use http or https: %s", c.API.Endpoint)
	}

	return nil
}

// Package config provides the YAML configuration model for the demo
// program. The library itself takes no configuration beyond its functional
// options; this package only decides which backend to open and where.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the config file.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendSQLX   = "sqlx"
)

// Config is the top-level demo configuration.
type Config struct {
	// Backend selects the storage backend: "bolt", "sqlite" or "sqlx"
	// (the latter two both open a SQLite file, through database/sql and
	// sqlx respectively).
	Backend string `yaml:"backend"`

	// StoragePath is the database file the collection is persisted in.
	StoragePath string `yaml:"storage_path"`

	// StorageKey is the slot the collection is kept under.
	StorageKey string `yaml:"storage_key"`

	// SeedPath is the seed dataset used on first run; empty disables seeding.
	SeedPath string `yaml:"seed_path"`

	// LogLevel is the minimum level to log: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:     BackendBolt,
		StoragePath: "campus-events.db",
		StorageKey:  "events",
		SeedPath:    "data/seeds.json",
		LogLevel:    "info",
	}
}

// Normalize fills in missing/zero values with defaults so partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	switch c.Backend {
	case BackendBolt, BackendSQLite, BackendSQLX:
	default:
		c.Backend = BackendBolt
	}

	if c.StoragePath == "" {
		c.StoragePath = "campus-events.db"
	}

	if c.StorageKey == "" {
		c.StorageKey = "events"
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
}

// Load loads configuration from the given YAML path. A missing file is a
// first run: the default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if saveErr := Save(path, cfg); saveErr != nil {
				return cfg, saveErr
			}

			return cfg, nil
		}

		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration to the given path, atomically via a temp
// file in the same directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".campus-events-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

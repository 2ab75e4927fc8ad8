// Package config loads nexus settings from an optional YAML file and
// NEXUS_* environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all nexus configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// StorageConfig selects the local key-value store.
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite, memory
	Path    string `yaml:"path"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Level         string `yaml:"level"` // debug, info, warn, error
	UseCaseEvents bool   `yaml:"use_case_events"`
}

// DashboardConfig sizes the recent-activity window.
type DashboardConfig struct {
	RecentIncidents int `yaml:"recent_incidents"`
	RecentTasks     int `yaml:"recent_tasks"`
}

// DefaultConfig returns a Config with defaults rooted at home.
func DefaultConfig(home string) Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Path:    filepath.Join(home, ".nexus", "nexus.db"),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Dashboard: DashboardConfig{
			RecentIncidents: 2,
			RecentTasks:     1,
		},
	}
}

// DefaultPath returns the config file location: NEXUS_CONFIG when set,
// otherwise ~/.nexus/config.yaml.
func DefaultPath(home string) string {
	if v := os.Getenv("NEXUS_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(home, ".nexus", "config.yaml")
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path, home string) (Config, error) {
	cfg := DefaultConfig(home)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NEXUS_DB"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("NEXUS_STORAGE"); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("NEXUS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("NEXUS_LOG_EVENTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Logging.UseCaseEvents = b
		}
	}
}

// Validate rejects settings the host cannot act on.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Path == "" {
			return errors.New("config: storage.path is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	if c.Dashboard.RecentIncidents < 0 || c.Dashboard.RecentTasks < 0 {
		return errors.New("config: dashboard limits must not be negative")
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: invalid log level %q", l.Level)
	}
	return level, nil
}

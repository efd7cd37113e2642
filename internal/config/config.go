// Package config loads reprise settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// BackendHTTP talks to the reprise HTTP API.
	BackendHTTP = "http"
	// BackendSQLite keeps motifs in a local SQLite file.
	BackendSQLite = "sqlite"
)

// Config holds every setting the CLI needs to build its collaborators.
type Config struct {
	Backend      string        `yaml:"backend"`
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	Database     string        `yaml:"database"`
	MaskToken    string        `yaml:"mask_token"`
	PageSize     int           `yaml:"page_size"`
	RepriseCount int           `yaml:"reprise_count"`
	LogLevel     string        `yaml:"log_level"`
	LogFormat    string        `yaml:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Backend:      BackendHTTP,
		BaseURL:      "http://127.0.0.1:5000",
		Timeout:      10 * time.Second,
		Database:     defaultDatabasePath(),
		MaskToken:    " ___ ",
		PageSize:     10,
		RepriseCount: 5,
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "reprise", "config.yaml")
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects settings the collaborators cannot work with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendHTTP:
		if c.BaseURL == "" {
			return errors.New("base_url is required for the http backend")
		}
	case BackendSQLite:
		if c.Database == "" {
			return errors.New("database is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendHTTP, BackendSQLite)
	}

	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}

	if c.RepriseCount <= 0 {
		return fmt.Errorf("reprise_count must be positive, got %d", c.RepriseCount)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	return nil
}

func defaultDatabasePath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".reprise", "reprise.db")
	}

	return filepath.Join(dir, ".reprise", "reprise.db")
}

// Package config loads and saves courtstat configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage driver constants
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the flat courtstat configuration
type Config struct {
	Version string `json:"version"`
	Driver  string `json:"driver"`        // "sqlite" or "postgres"
	DSN     string `json:"dsn,omitempty"` // postgres connection string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{Version: "1", Driver: DriverSQLite}
}

// LoadConfig reads config.json from ~/.courtstat. Missing file falls back
// to defaults; a present but unparseable file is an error. The DATABASE_URL
// environment variable, when set, overrides the driver to postgres with
// that DSN.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Driver = DriverPostgres
		cfg.DSN = dsn
	}

	return cfg, nil
}

// SaveConfig writes config.json to ~/.courtstat
func SaveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".courtstat", "config.json"), nil
}

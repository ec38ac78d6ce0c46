package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration for the demo binary. The library itself takes
// an explicit database path; these settings only drive cmd/userstore.
type Config struct {
	DBPath   string `env:"USERSTORE_DB_PATH" envDefault:"users.db"`
	LogLevel string `env:"USERSTORE_LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s, LogLevel: %s}", c.DBPath, c.LogLevel)
}

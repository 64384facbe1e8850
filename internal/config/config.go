// Package config loads calculator settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/napolitain/runecalc/internal/logging"
	"github.com/napolitain/runecalc/internal/models"
)

// Environment variable names
const (
	EnvLogLevel  = "RUNECALC_LOG_LEVEL"
	EnvLogFormat = "RUNECALC_LOG_FORMAT"
	EnvLogOutput = "RUNECALC_LOG_OUTPUT"
	EnvMaxLevel  = "RUNECALC_MAX_LEVEL"
)

// Config holds the calculator configuration
type Config struct {
	Logging logging.Config

	// MaxLevel is the exclusive price table ceiling
	MaxLevel int
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging:  logging.DefaultConfig(),
		MaxLevel: models.DefaultMaxLevel,
	}
}

// Load reads the configuration from environment variables, loading a .env
// file first if one exists
func Load() (*Config, error) {
	// Missing .env is fine, real env vars may be set instead
	_ = godotenv.Load()

	cfg := Default()
	cfg.Logging.Level = getEnv(EnvLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = getEnv(EnvLogFormat, cfg.Logging.Format)
	cfg.Logging.Output = getEnv(EnvLogOutput, cfg.Logging.Output)

	if raw, ok := os.LookupEnv(EnvMaxLevel); ok {
		maxLevel, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvMaxLevel, err)
		}
		cfg.MaxLevel = maxLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.MaxLevel < 1 {
		return fmt.Errorf("max level must be at least 1, got %d", c.MaxLevel)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

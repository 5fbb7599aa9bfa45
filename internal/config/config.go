// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	DBPath             string
	LogUseCases        bool
	DefaultPatientName string
	DefaultPatientAge  int
}

// Load reads configuration from environment variables. Values from a .env
// file must already be in the environment.
func Load() (*Config, error) {
	dbPath := getEnv("DOSEWISE_DB", "")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".dosewise", "dosewise.db")
	}

	cfg := &Config{
		DBPath:             dbPath,
		LogUseCases:        getEnvBool("DOSEWISE_LOG_USE_CASES", false),
		DefaultPatientName: getEnv("DOSEWISE_DEFAULT_NAME", "Patient"),
		DefaultPatientAge:  getEnvInt("DOSEWISE_DEFAULT_AGE", 40),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("DOSEWISE_DB cannot be empty")
	}
	if c.DefaultPatientAge < 0 {
		return fmt.Errorf("DOSEWISE_DEFAULT_AGE must be >= 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds CLI configuration.
type Config struct {
	Fetch   FetchConfig
	Logging LogConfig
}

// FetchConfig holds remote document fetching configuration.
type FetchConfig struct {
	TimeoutSeconds int   `envconfig:"FETCH_TIMEOUT" default:"30"`
	RetryCount     int   `envconfig:"FETCH_RETRIES" default:"2"`
	MaxBodyBytes   int64 `envconfig:"FETCH_MAX_BODY" default:"10485760"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TREEQUERY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return &Config{
			Fetch:   FetchConfig{TimeoutSeconds: 30, RetryCount: 2, MaxBodyBytes: 10 * 1024 * 1024},
			Logging: LogConfig{Level: "info"},
		}
	}
	return cfg
}

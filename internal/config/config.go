package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Storage backend names accepted by SKREW_STORAGE
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds the server settings read from the environment
type Config struct {
	Addr    string `env:"SKREW_ADDR" envDefault:":8080"`
	Storage string `env:"SKREW_STORAGE" envDefault:"memory"`

	// FilePath is the directory holding one JSON file per slot
	FilePath   string `env:"SKREW_FILE_PATH" envDefault:"data"`
	SQLitePath string `env:"SKREW_SQLITE_PATH" envDefault:"data/skrew.db"`
	RedisURL   string `env:"SKREW_REDIS_URL"`

	// StateKey overrides the slot key; empty selects the built-in key
	StateKey string `env:"SKREW_STATE_KEY"`
	LogLevel string `env:"SKREW_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the storage selection and the settings it needs
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageFile:
		if strings.TrimSpace(c.FilePath) == "" {
			return fmt.Errorf("SKREW_FILE_PATH is required when SKREW_STORAGE=%s", StorageFile)
		}
	case StorageRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("SKREW_REDIS_URL is required when SKREW_STORAGE=%s", StorageRedis)
		}
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SKREW_SQLITE_PATH is required when SKREW_STORAGE=%s", StorageSQLite)
		}
	default:
		return fmt.Errorf("invalid SKREW_STORAGE %q: must be memory, file, redis or sqlite", c.Storage)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, falling back to info
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid SKREW_LOG_LEVEL %q: %w", value, err)
	}
	return level, nil
}

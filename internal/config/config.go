package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Session store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	SessionTimeoutMinutes  int    `env:"SESSION_TIMEOUT_MINUTES" envDefault:"60"`
	CleanupIntervalMinutes int    `env:"CLEANUP_INTERVAL_MINUTES" envDefault:"10"`
	EncryptionPassphrase   string `env:"ENCRYPTION_PASSPHRASE"`
	TempDir                string `env:"TEMP_DIR" envDefault:""`
	OverwritePasses        int    `env:"OVERWRITE_PASSES" envDefault:"3"`
	LogLevel               string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLanguage        string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	SessionStore           string `env:"SESSION_STORE" envDefault:"memory"`
	DatabaseURL            string `env:"DATABASE_URL"`
	RedisURL               string `env:"REDIS_URL"`
	ReminderTurnInterval   int    `env:"REMINDER_TURN_INTERVAL" envDefault:"5"`
	MaxReferrals           int    `env:"MAX_REFERRALS" envDefault:"3"`
}

func (c *Config) SessionTimeout() time.Duration {
	return time.Duration(c.SessionTimeoutMinutes) * time.Minute
}

func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMinutes) * time.Minute
}

func (c *Config) Validate() error {
	switch c.SessionStore {
	case StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when SESSION_STORE=postgres")
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("SESSION_STORE must be one of memory, postgres, redis (got %q)", c.SessionStore)
	}

	if c.SessionTimeoutMinutes <= 0 {
		return fmt.Errorf("SESSION_TIMEOUT_MINUTES must be positive")
	}
	if c.CleanupIntervalMinutes <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL_MINUTES must be positive")
	}
	if c.OverwritePasses <= 0 {
		return fmt.Errorf("OVERWRITE_PASSES must be positive")
	}
	if c.DefaultLanguage != "en" && c.DefaultLanguage != "es" {
		return fmt.Errorf("DEFAULT_LANGUAGE must be en or es (got %q)", c.DefaultLanguage)
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

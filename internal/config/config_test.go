package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("SessionTimeout converts minutes to duration", func(t *testing.T) {
		cfg := &Config{SessionTimeoutMinutes: 60}
		assert.Equal(t, 60*time.Minute, cfg.SessionTimeout())
	})

	t.Run("CleanupInterval converts minutes to duration", func(t *testing.T) {
		cfg := &Config{CleanupIntervalMinutes: 10}
		assert.Equal(t, 10*time.Minute, cfg.CleanupInterval())
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			SessionTimeoutMinutes:  60,
			CleanupIntervalMinutes: 10,
			OverwritePasses:        3,
			DefaultLanguage:        "en",
			SessionStore:           StoreMemory,
		}
	}

	t.Run("memory backend needs no URLs", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("postgres backend requires DATABASE_URL", func(t *testing.T) {
		cfg := base()
		cfg.SessionStore = StorePostgres
		assert.Error(t, cfg.Validate())

		cfg.DatabaseURL = "postgres://localhost/legalaid"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("redis backend requires REDIS_URL", func(t *testing.T) {
		cfg := base()
		cfg.SessionStore = StoreRedis
		assert.Error(t, cfg.Validate())

		cfg.RedisURL = "redis://localhost:6379"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := base()
		cfg.SessionStore = "dynamo"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unsupported default language", func(t *testing.T) {
		cfg := base()
		cfg.DefaultLanguage = "fr"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive timeouts", func(t *testing.T) {
		cfg := base()
		cfg.SessionTimeoutMinutes = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	keys := []string{
		"SESSION_TIMEOUT_MINUTES", "CLEANUP_INTERVAL_MINUTES",
		"ENCRYPTION_PASSPHRASE", "TEMP_DIR", "OVERWRITE_PASSES",
		"LOG_LEVEL", "DEFAULT_LANGUAGE", "SESSION_STORE",
		"DATABASE_URL", "REDIS_URL", "REMINDER_TURN_INTERVAL", "MAX_REFERRALS",
	}
	originalEnv := map[string]string{}
	for _, k := range keys {
		originalEnv[k] = os.Getenv(k)
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	t.Run("loads config with defaults", func(t *testing.T) {
		for _, k := range keys {
			os.Unsetenv(k)
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 60, cfg.SessionTimeoutMinutes)
		assert.Equal(t, 10, cfg.CleanupIntervalMinutes)
		assert.Equal(t, 3, cfg.OverwritePasses)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "en", cfg.DefaultLanguage)
		assert.Equal(t, StoreMemory, cfg.SessionStore)
		assert.Equal(t, 5, cfg.ReminderTurnInterval)
		assert.Equal(t, 3, cfg.MaxReferrals)
	})

	t.Run("loads custom values", func(t *testing.T) {
		os.Setenv("SESSION_TIMEOUT_MINUTES", "30")
		os.Setenv("SESSION_STORE", "redis")
		os.Setenv("REDIS_URL", "redis://localhost:6379")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("DEFAULT_LANGUAGE", "es")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 30, cfg.SessionTimeoutMinutes)
		assert.Equal(t, StoreRedis, cfg.SessionStore)
		assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "es", cfg.DefaultLanguage)
	})
}

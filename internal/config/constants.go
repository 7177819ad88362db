package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Conversations longer than this are nudged toward human legal aid.
const MaxConversationTurns = 20

// Package config loads process-wide configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultUsersTable    = "users"
	defaultSessionsTable = "sessions"
	defaultCookieName    = "rapideat_session"
	defaultSessionTTL    = 7 // days
	defaultPort          = "8080"
)

// Config holds the runtime configuration for the RapidEat backend.
// It is loaded once at startup; the auth secret in particular must not change
// while the process is running (rotating it invalidates all sessions).
type Config struct {
	DatabaseDSN   string        // Postgres DSN
	UsersTable    string        // table holding user records
	SessionsTable string        // table holding session records
	CookieName    string        // session cookie name
	SessionTTL    time.Duration // session lifetime
	AuthSecret    string        // HMAC key for session token lookup hashes
	RedisAddr     string        // host:port, empty disables Redis
	RedisPassword string
	CORSOrigins   []string // allowed browser origins
	Production    bool     // APP_ENV == "production"
	Port          string
}

// Load reads configuration from environment variables, applying defaults
// for everything except the database DSN and auth secret.
func Load() Config {
	cfg := Config{
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		UsersTable:    envOr("AUTH_USERS_TABLE", defaultUsersTable),
		SessionsTable: envOr("AUTH_SESSIONS_TABLE", defaultSessionsTable),
		CookieName:    envOr("AUTH_SESSION_COOKIE", defaultCookieName),
		SessionTTL:    time.Duration(envInt("AUTH_SESSION_TTL_DAYS", defaultSessionTTL)) * 24 * time.Hour,
		AuthSecret:    os.Getenv("AUTH_SECRET"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Production:    os.Getenv("APP_ENV") == "production",
		Port:          envOr("PORT", defaultPort),
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + envOr("REDIS_PORT", "6379")
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.CORSOrigins = []string{origin}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	return cfg
}

// CookieMaxAge returns the session TTL in whole seconds for the Set-Cookie header.
func (c Config) CookieMaxAge() int {
	return int(c.SessionTTL / time.Second)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

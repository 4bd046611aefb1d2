// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment names recognised in [App.Environment].
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Mail providers recognised in [Mail.Provider].
const (
	MailProviderLog    = "log"
	MailProviderResend = "resend"
)

// StructuredConfig is the top-level configuration container for the
// go-session-auth server. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds environment-wide settings: deployment environment, public
	// base URL used in e-mailed links, and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the relational database and the
	// Redis key-value store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the session cookie and session store settings.
	Session Session `envPrefix:"SESSION_"`

	// Reset holds the password-reset token settings.
	Reset Reset `envPrefix:"RESET_"`

	// Mail selects and configures the outbound e-mail provider.
	Mail Mail `envPrefix:"MAIL_"`

	// Hashing holds argon2id parameters and the size of the hashing pool.
	Hashing Hashing `envPrefix:"HASHING_"`

	// Validation holds the input policy for usernames and passwords.
	Validation Validation `envPrefix:"VALIDATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Environment is "development" or "production". Production enables
	// Secure session cookies and JSON-only logging.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// BaseURL is the public URL of the front end, used to build
	// password-reset links (<BaseURL>/change-password/<token>).
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsProduction reports whether the server runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the key-value store connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the engine by scheme: "postgres://..." / "postgresql://..."
	// for PostgreSQL, "sqlite://<path>" or "file:<path>" for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the key-value store.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Session holds session cookie and storage settings.
type Session struct {
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`
	// TTL is both the store entry lifetime and the cookie Max-Age.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`
	// Secret signs session cookies and keys reset-token digests.
	// Must be kept confidential.
	// Env: SESSION_SECRET
	Secret string `env:"SECRET"`
	// Issuer is the "iss" claim of the signed cookie value.
	// Env: SESSION_ISSUER
	Issuer string `env:"ISSUER"`
	// Env: SESSION_PREFIX
	Prefix string `env:"PREFIX"`
	// UserPrefix prefixes the per-user set of live session ids.
	// Env: SESSION_USER_PREFIX
	UserPrefix string `env:"USER_PREFIX"`
}

// Reset holds password-reset token settings.
type Reset struct {
	// Env: RESET_TOKEN_TTL
	TokenTTL time.Duration `env:"TOKEN_TTL"`
	// Env: RESET_PREFIX
	Prefix string `env:"PREFIX"`
}

// Mail configures outbound e-mail.
type Mail struct {
	// Provider is "log" (write messages to the log) or "resend".
	// Env: MAIL_PROVIDER
	Provider string `env:"PROVIDER"`
	// Env: MAIL_API_KEY
	APIKey string `env:"API_KEY"`
	// Env: MAIL_FROM
	From string `env:"FROM"`
	// Env: MAIL_SUBJECT
	Subject string `env:"SUBJECT"`
}

// Hashing holds argon2id parameters and the hashing pool size.
type Hashing struct {
	// Env: HASHING_WORKERS
	Workers int `env:"WORKERS"`
	// Env: HASHING_MEMORY_KIB
	MemoryKiB uint32 `env:"MEMORY_KIB"`
	// Env: HASHING_ITERATIONS
	Iterations uint32 `env:"ITERATIONS"`
	// Env: HASHING_THREADS
	Threads uint8 `env:"THREADS"`
}

// Validation holds the input policy.
type Validation struct {
	// Env: VALIDATION_MIN_USERNAME_LENGTH
	MinUsernameLength int `env:"MIN_USERNAME_LENGTH"`
	// Env: VALIDATION_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

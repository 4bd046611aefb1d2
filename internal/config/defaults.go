package config

import (
	"runtime"
	"time"
)

// Defaults returns the built-in configuration layer. Secrets and the
// database DSN have no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvironmentDevelopment,
			BaseURL:     "http://localhost:3000",
			LogLevel:    "info",
		},
		Server: Server{
			HTTPAddress:     "localhost:4000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: Storage{
			Redis: Redis{Address: "localhost:6379"},
		},
		Session: Session{
			CookieName: "qid",
			TTL:        10 * 365 * 24 * time.Hour,
			Issuer:     "go-session-auth",
			Prefix:     "sess:",
			UserPrefix: "user-sess:",
		},
		Reset: Reset{
			TokenTTL: 3 * 24 * time.Hour,
			Prefix:   "forget-password:",
		},
		Mail: Mail{
			Provider: MailProviderLog,
			Subject:  "Change your password",
		},
		Hashing: Hashing{
			Workers:    runtime.NumCPU(),
			MemoryKiB:  64 * 1024,
			Iterations: 1,
			Threads:    4,
		},
		Validation: Validation{
			MinUsernameLength: 3,
			MinPasswordLength: 8,
		},
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}
	if cfg.App.BaseURL == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported database dsn", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Redis.Address == "" {
		return fmt.Errorf("%w: empty redis address", ErrInvalidStorageConfigs)
	}

	if cfg.Session.Secret == "" || cfg.Session.CookieName == "" || cfg.Session.Issuer == "" ||
		cfg.Session.Prefix == "" || cfg.Session.UserPrefix == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.Reset.TokenTTL <= 0 || cfg.Reset.Prefix == "" {
		return ErrInvalidResetConfigs
	}

	switch cfg.Mail.Provider {
	case MailProviderLog:
	case MailProviderResend:
		if cfg.Mail.APIKey == "" || cfg.Mail.From == "" {
			return fmt.Errorf("%w: resend requires api key and sender", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidMailConfigs, cfg.Mail.Provider)
	}

	if cfg.Hashing.Workers <= 0 || cfg.Hashing.MemoryKiB == 0 || cfg.Hashing.Iterations == 0 || cfg.Hashing.Threads == 0 {
		return ErrInvalidHashingConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	for _, prefix := range []string{"postgres://", "postgresql://", "sqlite://", "file:"} {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}

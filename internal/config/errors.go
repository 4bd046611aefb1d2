package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN, an unsupported DSN
	// scheme or a missing Redis address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates a missing secret, cookie name or
	// non-positive TTL.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidResetConfigs indicates a non-positive token TTL or empty prefix.
	ErrInvalidResetConfigs = errors.New("invalid reset token configuration")
	// ErrInvalidMailConfigs indicates an unknown provider or a resend
	// provider without API key / sender.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidHashingConfigs indicates zero workers or argon2 parameters.
	ErrInvalidHashingConfigs = errors.New("invalid hashing configuration")
	// ErrInvalidAppConfigs indicates an unknown environment or empty base URL.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

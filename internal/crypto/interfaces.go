// Package crypto implements password hashing for stored credentials.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a self-describing encoded hash of password.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches encodedHash.
	// A malformed hash is a mismatch, not an error; errors are reserved for
	// infrastructure conditions such as a cancelled context.
	Verify(ctx context.Context, encodedHash, password string) (bool, error)
}

// HashObserver receives the duration of every completed hash operation.
// op is "hash" or "verify".
type HashObserver interface {
	ObserveHash(op string, seconds float64)
}

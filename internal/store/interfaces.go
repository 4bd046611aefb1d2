package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore persists user accounts. Uniqueness of username and email
// is enforced by the database; violations surface as [*DuplicateFieldError].
type CredentialStore interface {
	// Create inserts user and returns the stored row. ID, CreatedAt and
	// UpdatedAt are assigned by the store.
	Create(ctx context.Context, user models.User) (models.User, error)
	// FindByUsernameOrEmail treats identifier as an e-mail address when it
	// contains "@" and as a username otherwise.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// UpdatePassword replaces the password hash and refreshes UpdatedAt.
	UpdatePassword(ctx context.Context, id, passwordHash string) (models.User, error)
	Ping(ctx context.Context) error
}

// KeyValueStore is a string key-value store with per-key expiry.
// Missing or expired keys are reported as [ErrKeyNotFound].
type KeyValueStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// GetDel atomically reads and deletes key.
	GetDel(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	// AddToSet adds member to the set at key and resets the set expiry to ttl.
	AddToSet(ctx context.Context, key, member string, ttl time.Duration) error
	SetMembers(ctx context.Context, key string) ([]string, error)
	RemoveFromSet(ctx context.Context, key string, members ...string) error
	Ping(ctx context.Context) error
}

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup matches no user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateField is matched by every [*DuplicateFieldError].
	ErrDuplicateField = errors.New("duplicate field")

	// ErrKeyNotFound is returned by the key-value store for absent or
	// expired keys.
	ErrKeyNotFound = errors.New("key not found")

	// ErrUnsupportedDSN is returned when the database DSN scheme selects no
	// known engine.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are wrapped by store methods
// when a SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)

// DuplicateFieldError reports a unique constraint violation on a user field.
type DuplicateFieldError struct {
	// Field is "username" or "email".
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

// Is makes every DuplicateFieldError match ErrDuplicateField.
func (e *DuplicateFieldError) Is(target error) bool {
	return target == ErrDuplicateField
}

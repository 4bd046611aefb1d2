package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier maps PostgreSQL driver errors onto store errors.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// DuplicateField reports the user field behind a unique_violation (23505).
// The field is taken from the violated constraint name
// (users_username_unique / users_email_unique).
func (c *PostgresErrorClassifier) DuplicateField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	if field, ok := fieldFromConstraint(pgErr.ConstraintName); ok {
		return field, true
	}

	// Detail looks like "Key (email)=(a@b.c) already exists."
	switch {
	case strings.HasPrefix(pgErr.Detail, "Key (email)"):
		return "email", true
	case strings.HasPrefix(pgErr.Detail, "Key (username)"):
		return "username", true
	default:
		return "", false
	}
}

// fieldFromConstraint picks the user column named in a constraint name.
func fieldFromConstraint(s string) (string, bool) {
	switch {
	case strings.Contains(s, "email"):
		return "email", true
	case strings.Contains(s, "username"):
		return "username", true
	default:
		return "", false
	}
}

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// random token generation, HTTP response writing and signed session cookies.
package utils

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the per-request *models.SessionContext
// is stored in the context.
var SessionCtxKey = contextKey("session")

// WithSessionContext returns a copy of ctx carrying sess.
func WithSessionContext(ctx context.Context, sess *models.SessionContext) context.Context {
	return context.WithValue(ctx, SessionCtxKey, sess)
}

// GetSessionContext retrieves the session context stored by WithSessionContext.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetSessionContext(ctx context.Context) (*models.SessionContext, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(*models.SessionContext)
	return sess, ok && sess != nil
}

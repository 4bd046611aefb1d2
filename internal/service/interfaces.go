package service

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// AuthService implements the account operations exposed to clients.
//
// Operations that return a [models.UserResult] report user mistakes
// (validation, duplicates, bad credentials, bad tokens) inside the result.
// The error return is reserved for infrastructure failures.
type AuthService interface {
	Register(ctx context.Context, sess *models.SessionContext, req models.RegisterRequest) (models.UserResult, error)
	Login(ctx context.Context, sess *models.SessionContext, req models.LoginRequest) (models.UserResult, error)
	// Logout always leaves a clearing cookie directive in sess. It returns
	// false only when the session could not be destroyed.
	Logout(ctx context.Context, sess *models.SessionContext) bool
	// Me returns nil for anonymous callers and for sessions whose user no
	// longer exists.
	Me(ctx context.Context, sess *models.SessionContext) (*models.User, error)
	// ForgotPassword always returns true, whether or not a mail was sent.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) bool
	ResetPassword(ctx context.Context, sess *models.SessionContext, req models.ResetPasswordRequest) (models.UserResult, error)
}

// SessionManager issues, resolves and destroys server-side sessions.
type SessionManager interface {
	// Create stores a new session for userID and returns the cookie that
	// carries it.
	Create(ctx context.Context, userID string) (models.Session, models.Cookie, error)
	// Resolve maps a cookie value to a session. Unknown, tampered and expired
	// values resolve to the anonymous session; only store failures are errors.
	Resolve(ctx context.Context, cookieValue string) (models.Session, error)
	Destroy(ctx context.Context, session models.Session) error
	DestroyAllForUser(ctx context.Context, userID string) error
	// ClearCookie returns the directive that removes the session cookie.
	ClearCookie() models.Cookie
}

// ResetTokenService issues and redeems single-use password-reset tokens.
type ResetTokenService interface {
	Issue(ctx context.Context, userID string) (string, error)
	// Consume returns the user id bound to token and invalidates the token.
	Consume(ctx context.Context, token string) (string, error)
}

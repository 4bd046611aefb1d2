package models

import "time"

// SameSite mirrors the SameSite cookie attribute without tying models to net/http.
type SameSite string

// SameSiteLax is the only policy used for session cookies.
const SameSiteLax SameSite = "lax"

// Session binds an opaque session identifier to a user.
// The zero value is the anonymous session.
type Session struct {
	ID     string
	UserID string
}

// IsAnonymous reports whether the session identifies no user.
func (s Session) IsAnonymous() bool {
	return s.ID == "" || s.UserID == ""
}

// Cookie is an instruction for the transport boundary describing how the
// client-visible session cookie must change.
type Cookie struct {
	Name     string
	Value    string
	Path     string
	MaxAge   time.Duration
	HTTPOnly bool
	Secure   bool
	SameSite SameSite

	// Clear asks the boundary to expire the cookie on the client.
	Clear bool
}

// SessionContext is passed into every session-aware operation.
//
// Token is the raw cookie value presented by the caller (empty when the
// caller has no cookie). Cookie is filled by the operation when the client
// cookie must be set or cleared; nil means "leave it as is".
type SessionContext struct {
	Token  string
	Cookie *Cookie
}

// NewSessionContext creates a context for a caller presenting token.
func NewSessionContext(token string) *SessionContext {
	return &SessionContext{Token: token}
}

// Establish records a freshly issued session cookie. Subsequent operations
// on the same context act on the new session.
func (s *SessionContext) Establish(cookie Cookie) {
	s.Token = cookie.Value
	s.Cookie = &cookie
}

// Clear records a cookie-clearing directive and forgets the token.
func (s *SessionContext) Clear(cookie Cookie) {
	s.Token = ""
	cookie.Clear = true
	cookie.Value = ""
	s.Cookie = &cookie
}

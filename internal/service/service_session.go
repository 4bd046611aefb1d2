package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// sessionManager keeps sessions in the key-value store under
// <prefix><sessionID> and indexes them per user under <userPrefix><userID>.
// The cookie value is a signed token carrying the session id.
type sessionManager struct {
	kv store.KeyValueStore

	cookieName string
	ttl        time.Duration
	secret     string
	issuer     string
	prefix     string
	userPrefix string
	secure     bool

	generateID func() (string, error)
}

// NewSessionManager builds a SessionManager from the session settings.
// secure controls the Secure cookie attribute and is set in production.
func NewSessionManager(kv store.KeyValueStore, cfg config.Session, secure bool) SessionManager {
	return &sessionManager{
		kv:         kv,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secret:     cfg.Secret,
		issuer:     cfg.Issuer,
		prefix:     cfg.Prefix,
		userPrefix: cfg.UserPrefix,
		secure:     secure,
		generateID: utils.GenerateToken,
	}
}

func (m *sessionManager) Create(ctx context.Context, userID string) (models.Session, models.Cookie, error) {
	id, err := m.generateID()
	if err != nil {
		return models.Session{}, models.Cookie{}, fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	if err = m.kv.Set(ctx, m.sessionKey(id), userID, m.ttl); err != nil {
		return models.Session{}, models.Cookie{}, fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}
	if err = m.kv.AddToSet(ctx, m.userKey(userID), id, m.ttl); err != nil {
		return models.Session{}, models.Cookie{}, fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}

	value, err := utils.SignSessionToken(m.issuer, id, m.ttl, m.secret)
	if err != nil {
		return models.Session{}, models.Cookie{}, fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	cookie := m.baseCookie()
	cookie.Value = value
	cookie.MaxAge = m.ttl

	return models.Session{ID: id, UserID: userID}, cookie, nil
}

func (m *sessionManager) Resolve(ctx context.Context, cookieValue string) (models.Session, error) {
	if cookieValue == "" {
		return models.Session{}, nil
	}

	id, err := utils.ParseSessionToken(cookieValue, m.secret, m.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "sessionManager.Resolve").Msg("rejected session cookie")
		return models.Session{}, nil
	}

	userID, err := m.kv.Get(ctx, m.sessionKey(id))
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}

	return models.Session{ID: id, UserID: userID}, nil
}

func (m *sessionManager) Destroy(ctx context.Context, session models.Session) error {
	if session.IsAnonymous() {
		return nil
	}

	if err := m.kv.Delete(ctx, m.sessionKey(session.ID)); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}
	if err := m.kv.RemoveFromSet(ctx, m.userKey(session.UserID), session.ID); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}
	return nil
}

func (m *sessionManager) DestroyAllForUser(ctx context.Context, userID string) error {
	ids, err := m.kv.SetMembers(ctx, m.userKey(userID))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, m.sessionKey(id))
	}
	keys = append(keys, m.userKey(userID))

	if err = m.kv.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStoreFailed, err)
	}
	return nil
}

func (m *sessionManager) ClearCookie() models.Cookie {
	cookie := m.baseCookie()
	cookie.Clear = true
	return cookie
}

func (m *sessionManager) baseCookie() models.Cookie {
	return models.Cookie{
		Name:     m.cookieName,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: models.SameSiteLax,
	}
}

func (m *sessionManager) sessionKey(id string) string {
	return m.prefix + id
}

func (m *sessionManager) userKey(userID string) string {
	return m.userPrefix + userID
}

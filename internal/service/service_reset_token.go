package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// resetTokenService stores HMAC digests of reset tokens, never the tokens
// themselves, under <prefix><digest> with the user id as value.
type resetTokenService struct {
	kv     store.KeyValueStore
	secret string
	prefix string
	ttl    time.Duration

	generate func() (string, error)
}

// NewResetTokenService builds a ResetTokenService. secret keys the token
// digests.
func NewResetTokenService(kv store.KeyValueStore, cfg config.Reset, secret string) ResetTokenService {
	return &resetTokenService{
		kv:       kv,
		secret:   secret,
		prefix:   cfg.Prefix,
		ttl:      cfg.TokenTTL,
		generate: utils.GenerateToken,
	}
}

func (r *resetTokenService) Issue(ctx context.Context, userID string) (string, error) {
	token, err := r.generate()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	if err = r.kv.Set(ctx, r.key(token), userID, r.ttl); err != nil {
		return "", fmt.Errorf("%w: %w", ErrResetStoreFailed, err)
	}
	return token, nil
}

func (r *resetTokenService) Consume(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidOrExpiredToken
	}

	userID, err := r.kv.GetDel(ctx, r.key(token))
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", ErrInvalidOrExpiredToken
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResetStoreFailed, err)
	}
	if userID == "" {
		return "", ErrInvalidOrExpiredToken
	}
	return userID, nil
}

func (r *resetTokenService) key(token string) string {
	return r.prefix + utils.HashString(token, r.secret)
}

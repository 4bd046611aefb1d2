package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSessionToken is returned when a session cookie value cannot be
// verified: bad signature, wrong issuer, expired or missing session id.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SignSessionToken wraps sessionID into an HMAC-SHA256 signed JWT that is
// used as the session cookie value.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - ID        (jti): the opaque session identifier
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	value, err := utils.SignSessionToken("go-session-auth", sessionID, 24*time.Hour, "secret")
func SignSessionToken(issuer, sessionID string, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || sessionID == "" || ttl <= 0 || signKey == "" {
		return "", errors.New("invalid params for signing session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken verifies a session cookie value and returns the session id.
//
// Validation includes signature verification (HS256 only), issuer check and
// expiration check. Every failure is reported as ErrInvalidSessionToken.
func ParseSessionToken(tokenString, signKey, issuer string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)
	}

	if claims.ID == "" {
		return "", fmt.Errorf("%w: empty session id", ErrInvalidSessionToken)
	}

	return claims.ID, nil
}

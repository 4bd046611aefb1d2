package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenBytes is the amount of entropy in tokens produced by GenerateToken.
const TokenBytes = 32

// GenerateToken returns a URL-safe, unpadded base64 string encoding
// TokenBytes bytes from the system CSPRNG.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

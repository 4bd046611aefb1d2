// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
)

// OWASP-recommended argon2id parameters.
const (
	DefaultMemoryKiB  = 64 * 1024
	DefaultIterations = 1
	DefaultThreads    = 4
	DefaultSaltLen    = 16
	DefaultKeyLen     = 32
)

// upper bounds accepted when decoding a stored hash
const (
	maxMemoryKiB  = 1024 * 1024
	maxIterations = 64
	maxKeyLen     = 1024
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = oops.Code("AUTH_EMPTY_PASSWORD").Errorf("password cannot be empty")

// Argon2Params configures argon2id. Zero fields take the defaults.
type Argon2Params struct {
	MemoryKiB  uint32
	Iterations uint32
	Threads    uint8
	SaltLen    uint32
	KeyLen     uint32
}

func (p Argon2Params) withDefaults() Argon2Params {
	if p.MemoryKiB == 0 {
		p.MemoryKiB = DefaultMemoryKiB
	}
	if p.Iterations == 0 {
		p.Iterations = DefaultIterations
	}
	if p.Threads == 0 {
		p.Threads = DefaultThreads
	}
	if p.SaltLen == 0 {
		p.SaltLen = DefaultSaltLen
	}
	if p.KeyLen == 0 {
		p.KeyLen = DefaultKeyLen
	}
	return p
}

// Argon2idHasher produces and checks PHC-encoded argon2id hashes
// synchronously on the calling goroutine.
type Argon2idHasher struct {
	params Argon2Params
}

// NewArgon2idHasher creates a hasher using params.
func NewArgon2idHasher(params Argon2Params) *Argon2idHasher {
	return &Argon2idHasher{params: params.withDefaults()}
}

// Params returns the effective parameters.
func (h *Argon2idHasher) Params() Argon2Params {
	return h.params
}

// HashPassword produces an argon2id hash of the password in PHC format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func (h *Argon2idHasher) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", oops.Code("AUTH_SALT_FAILED").Wrap(err)
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.MemoryKiB, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Iterations,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword checks password against a PHC-encoded argon2id hash using
// the parameters embedded in the hash. Malformed hashes never match.
func (h *Argon2idHasher) VerifyPassword(encodedHash, password string) bool {
	d, ok := decodeHash(encodedHash)
	if !ok {
		return false
	}

	computed := argon2.IDKey([]byte(password), d.salt, d.iterations, d.memory, d.threads, uint32(len(d.key)))

	return subtle.ConstantTimeCompare(computed, d.key) == 1
}

type decodedHash struct {
	memory     uint32
	iterations uint32
	threads    uint8
	salt       []byte
	key        []byte
}

func decodeHash(encoded string) (decodedHash, bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return decodedHash{}, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return decodedHash{}, false
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return decodedHash{}, false
	}
	if memory == 0 || memory > maxMemoryKiB || iterations == 0 || iterations > maxIterations ||
		threads == 0 || threads > 255 {
		return decodedHash{}, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return decodedHash{}, false
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxKeyLen {
		return decodedHash{}, false
	}

	return decodedHash{
		memory:     memory,
		iterations: iterations,
		threads:    uint8(threads),
		salt:       salt,
		key:        key,
	}, true
}

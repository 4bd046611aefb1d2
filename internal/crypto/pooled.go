package crypto

import (
	"context"
	"time"

	"github.com/samber/oops"

	"github.com/MKhiriev/go-session-auth/internal/workers"
)

// Submitter runs fn on another goroutine and waits for it.
// *workers.Pool satisfies it.
type Submitter interface {
	Submit(ctx context.Context, fn func()) error
}

var _ Submitter = (*workers.Pool)(nil)

// pooledHasher offloads argon2id work to a bounded goroutine pool so that
// request goroutines never run more than pool-size hashes concurrently.
type pooledHasher struct {
	hasher   *Argon2idHasher
	pool     Submitter
	observer HashObserver
}

// NewPasswordHasher returns a PasswordHasher executing hasher on pool.
// observer may be nil.
func NewPasswordHasher(hasher *Argon2idHasher, pool Submitter, observer HashObserver) PasswordHasher {
	return &pooledHasher{hasher: hasher, pool: pool, observer: observer}
}

func (p *pooledHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	var (
		encoded string
		hashErr error
	)
	start := time.Now()
	err := p.pool.Submit(ctx, func() {
		encoded, hashErr = p.hasher.HashPassword(password)
	})
	if err != nil {
		return "", oops.Code("AUTH_HASHER_UNAVAILABLE").Wrap(err)
	}
	p.observe("hash", start)

	return encoded, hashErr
}

func (p *pooledHasher) Verify(ctx context.Context, encodedHash, password string) (bool, error) {
	var ok bool
	start := time.Now()
	err := p.pool.Submit(ctx, func() {
		ok = p.hasher.VerifyPassword(encodedHash, password)
	})
	if err != nil {
		return false, oops.Code("AUTH_HASHER_UNAVAILABLE").Wrap(err)
	}
	p.observe("verify", start)

	return ok, nil
}

func (p *pooledHasher) observe(op string, start time.Time) {
	if p.observer != nil {
		p.observer.ObserveHash(op, time.Since(start).Seconds())
	}
}

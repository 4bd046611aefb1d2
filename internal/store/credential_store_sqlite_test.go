// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

func newTestSQLiteStore(t *testing.T) CredentialStore {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "auth.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return NewCredentialStore(db, logger.Nop())
}

func strPtr(s string) *string { return &s }

func TestSQLiteCreateAndFind(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, models.User{Username: "alice", Email: strPtr("alice@example.com"), PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	byName, err := s.FindByUsernameOrEmail(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := s.FindByUsernameOrEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.WithinDuration(t, created.CreatedAt, byID.CreatedAt, time.Millisecond)

	_, err = s.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// the identifier strategy never crosses columns
	_, err = s.FindByUsernameOrEmail(ctx, "alice@")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteCreate_Duplicates(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, models.User{Username: "alice", Email: strPtr("alice@example.com"), PasswordHash: "h"})
	require.NoError(t, err)

	_, err = s.Create(ctx, models.User{Username: "alice", PasswordHash: "h"})
	var dup *DuplicateFieldError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "username", dup.Field)

	_, err = s.Create(ctx, models.User{Username: "alice2", Email: strPtr("alice@example.com"), PasswordHash: "h"})
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "email", dup.Field)

	// several accounts without e-mail
	_, err = s.Create(ctx, models.User{Username: "bob", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.User{Username: "carol", PasswordHash: "h"})
	require.NoError(t, err)
}

func TestSQLiteCreate_ConcurrentSameUsername(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, models.User{Username: "racer", PasswordHash: "h"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrDuplicateField):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, dup)
}

func TestSQLiteUpdatePassword(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, models.User{Username: "alice", PasswordHash: "old"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := s.UpdatePassword(ctx, created.ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.PasswordHash)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)

	_, err = s.UpdatePassword(ctx, "missing", "x")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewDB_UnsupportedDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{DSN: "mysql://localhost"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/a.db?_busy_timeout=5000", sqliteDSN("sqlite:///tmp/a.db"))
	assert.Equal(t, "file:a.db?cache=shared", sqliteDSN("file:a.db?cache=shared"))
}

func TestTimeScanner(t *testing.T) {
	var got time.Time
	s := timeScanner{&got}

	require.NoError(t, s.Scan("2026-01-02 03:04:05.123456789+00:00"))
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 123456789, got.Nanosecond())

	require.NoError(t, s.Scan([]byte("2026-01-02T03:04:05Z")))
	assert.Equal(t, 3, got.Hour())

	require.NoError(t, s.Scan(nil))
	assert.True(t, got.IsZero())

	assert.Error(t, s.Scan("yesterday"))
	assert.Error(t, s.Scan(42))
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// Storages aggregates every persistence backend used by the services.
type Storages struct {
	CredentialStore CredentialStore
	KeyValueStore   KeyValueStore

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the database and Redis, applies migrations and
// builds the stores.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	client, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		CredentialStore: NewCredentialStore(db, log),
		KeyValueStore:   NewKeyValueStore(client),
		db:              db,
		redis:           client,
	}, nil
}

// Ping checks every backend.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.CredentialStore.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	if err := s.KeyValueStore.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases all connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}

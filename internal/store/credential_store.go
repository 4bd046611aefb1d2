package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// IDGenerator produces new user identifiers.
type IDGenerator interface {
	Generate() string
}

// credentialStore is the SQL implementation of [CredentialStore] over the
// "users" table. The same code serves PostgreSQL and SQLite; only the
// placeholder format and the unique-violation classifier differ.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type credentialStore struct {
	db      *DB
	queries queryBuilder
	ids     IDGenerator
	now     func() time.Time
}

// NewCredentialStore constructs a [CredentialStore] backed by db.
func NewCredentialStore(db *DB, log *logger.Logger) CredentialStore {
	log.Debug().Str("dialect", db.dialect).Msg("creating credential store")
	return &credentialStore{
		db:      db,
		queries: queryBuilder{placeholder: db.placeholder},
		ids:     utils.NewUUIDGenerator(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new user record and returns the stored row.
//
// Error handling:
//   - unique violation on username or email → [*DuplicateFieldError].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (s *credentialStore) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	user.ID = s.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := s.queries.createUser(user)
	if err != nil {
		return models.User{}, err
	}

	created, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if field, ok := s.db.classifier.DuplicateField(err); ok {
			return models.User{}, &DuplicateFieldError{Field: field}
		}
		log.Err(err).Str("func", "*credentialStore.Create").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindByUsernameOrEmail looks a user up by e-mail when identifier contains
// "@", by username otherwise.
func (s *credentialStore) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	if strings.Contains(identifier, "@") {
		return s.findBy(ctx, "email", identifier)
	}
	return s.findBy(ctx, "username", identifier)
}

func (s *credentialStore) FindByID(ctx context.Context, id string) (models.User, error) {
	return s.findBy(ctx, "id", id)
}

func (s *credentialStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findBy(ctx, "email", email)
}

func (s *credentialStore) findBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.findUserBy(column, value)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialStore.findBy").Str("column", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdatePassword replaces the stored hash and refreshes updated_at.
// Returns [ErrUserNotFound] when no row has the id.
func (s *credentialStore) UpdatePassword(ctx context.Context, id, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.queries.updatePassword(id, passwordHash, s.now())
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialStore.UpdatePassword").Msg("error updating password")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (s *credentialStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		timeScanner{&user.CreatedAt}, timeScanner{&user.UpdatedAt})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

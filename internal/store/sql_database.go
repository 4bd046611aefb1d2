package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/migrations"
)

// duplicateClassifier extracts the violated user field from an engine
// specific unique-constraint error.
type duplicateClassifier interface {
	DuplicateField(err error) (field string, ok bool)
}

// DB is a database handle bound to one SQL dialect.
type DB struct {
	*sql.DB
	dialect     string
	placeholder sq.PlaceholderFormat
	classifier  duplicateClassifier
	logger      *logger.Logger
}

// NewDB opens the database selected by the DSN scheme:
//   - postgres:// or postgresql:// → PostgreSQL via pgx
//   - sqlite://<path> or file:<path> → SQLite
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Dialect returns the migrations dialect name of the database.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the database dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/migrations"
)

// NewConnectSQLite opens an SQLite database file. dsn is either
// "sqlite://<path>" or a go-sqlite3 "file:" URI.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(dsn))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single writer avoids SQLITE_BUSY under concurrent requests
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:          conn,
		dialect:     migrations.DialectSQLite,
		placeholder: sq.Question,
		classifier:  sqliteErrorClassifier{},
		logger:      log,
	}
}

func sqliteDSN(dsn string) string {
	if path, ok := strings.CutPrefix(dsn, "sqlite://"); ok {
		return "file:" + path + "?_busy_timeout=5000"
	}
	return dsn
}

type sqliteErrorClassifier struct{}

// DuplicateField reports the user field behind SQLITE_CONSTRAINT_UNIQUE.
// SQLite names the column in the message: "UNIQUE constraint failed: users.email".
func (sqliteErrorClassifier) DuplicateField(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return "", false
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.email"):
		return "email", true
	case strings.Contains(msg, "users.username"):
		return "username", true
	default:
		return fieldFromConstraint(msg)
	}
}

// timeScanner reads timestamps that SQLite may hand back as text (for
// example from RETURNING clauses, which carry no declared column type).
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s timeScanner) parse(v string) error {
	v = strings.TrimSuffix(v, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", v)
}

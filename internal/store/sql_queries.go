package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/models"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

const returningUser = "RETURNING id, username, email, password_hash, created_at, updated_at"

// queryBuilder renders user queries for one placeholder format.
type queryBuilder struct {
	placeholder sq.PlaceholderFormat
}

func (b queryBuilder) createUser(user models.User) (string, []any, error) {
	query, args, err := sq.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix(returningUser).
		PlaceholderFormat(b.placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// findUserBy selects a single user where column equals value.
func (b queryBuilder) findUserBy(column, value string) (string, []any, error) {
	query, args, err := sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		PlaceholderFormat(b.placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (b queryBuilder) updatePassword(id, passwordHash string, updatedAt time.Time) (string, []any, error) {
	query, args, err := sq.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returningUser).
		PlaceholderFormat(b.placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

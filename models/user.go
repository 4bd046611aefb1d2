package models

import "time"

// User represents an account entity used for authentication.
// It contains identity attributes and the credential hash.
// PasswordHash must never leave the server: it is excluded from JSON.
type User struct {
	// ID is the opaque unique identifier of the user (UUIDv7).
	ID string `json:"id"`

	// Username is the unique, non-empty login name.
	Username string `json:"username"`

	// Email is the optional unique e-mail address. Nil when not provided.
	Email *string `json:"email"`

	// PasswordHash stores the argon2id PHC string of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation of the account.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// EmailValue returns the e-mail address or an empty string when it is not set.
func (u User) EmailValue() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}

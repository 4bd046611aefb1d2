// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FieldError is a user-facing, field-scoped error message.
// Field names follow the JSON names of the request that produced them
// (e.g. "username", "usernameOrEmail", "token").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserResult is the outcome of an operation that either yields a user or a
// list of field errors, never both.
//
// The zero value is a failure without errors; use [UserSuccess] and
// [UserFailure] to construct results.
type UserResult struct {
	user   *User
	errors []FieldError
}

// UserSuccess wraps a successfully authenticated or created user.
func UserSuccess(user User) UserResult {
	return UserResult{user: &user}
}

// UserFailure wraps one or more field errors.
func UserFailure(errs ...FieldError) UserResult {
	return UserResult{errors: errs}
}

// OK reports whether the result carries a user.
func (r UserResult) OK() bool {
	return r.user != nil
}

// User returns the user and true on success.
func (r UserResult) User() (User, bool) {
	if r.user == nil {
		return User{}, false
	}
	return *r.user, true
}

// Errors returns the field errors of a failed result.
func (r UserResult) Errors() []FieldError {
	return r.errors
}

// userResponse is the wire form of [UserResult].
type userResponse struct {
	User   *User        `json:"user,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// MarshalJSON encodes the result as {"user": ...} or {"errors": [...]}.
func (r UserResult) MarshalJSON() ([]byte, error) {
	if r.user != nil {
		return json.Marshal(userResponse{User: r.user})
	}
	errs := r.errors
	if errs == nil {
		errs = []FieldError{}
	}
	return json.Marshal(struct {
		Errors []FieldError `json:"errors"`
	}{Errors: errs})
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON.
func (r *UserResult) UnmarshalJSON(data []byte) error {
	var resp userResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return err
	}
	r.user = resp.User
	r.errors = resp.Errors
	return nil
}

// MeResponse is the body of the "me" endpoint. User is null for anonymous callers.
type MeResponse struct {
	User *User `json:"user"`
}

// StatusResponse is the body of boolean endpoints (logout, forgot-password).
type StatusResponse struct {
	OK bool `json:"ok"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

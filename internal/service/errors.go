package service

import "errors"

var (
	// ErrInvalidOrExpiredToken is returned by ResetTokenService.Consume for
	// tokens that were never issued, have expired or were already used.
	ErrInvalidOrExpiredToken = errors.New("token expired or invalid")

	ErrSessionStoreFailed    = errors.New("session store failed")
	ErrResetStoreFailed      = errors.New("reset token store failed")
	ErrTokenCreation         = errors.New("token creation failed")
	ErrValidationFailed      = errors.New("validation failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// User-facing messages of field errors produced by the services.
const (
	MsgInvalidCredentials = "invalid credentials"
	MsgAlreadyTakenFmt    = "%s already taken"
	MsgTokenInvalid       = "token expired or invalid"
)

// Field names used in field errors that are not produced by the validator.
const (
	FieldUsernameOrEmail = "usernameOrEmail"
	FieldToken           = "token"
)

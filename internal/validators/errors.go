package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-session-auth/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field error messages shared by every auth request.
const (
	MsgRequired     = "cannot be empty"
	MsgInvalidEmail = "invalid email"
	MsgIncludesAt   = "cannot include an @"
	MsgTooShortFmt  = "length must be at least %d"
)

// FieldErrors is returned by Validate when one or more fields break the rules.
// It keeps the order in which the fields are declared in the request struct.
type FieldErrors []models.FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors extracts the field errors from err. It returns false when err
// was not produced by a failed validation.
func AsFieldErrors(err error) ([]models.FieldError, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/models"
)

const (
	tagUsername = "username"
	tagPassword = "password"
)

type authValidator struct {
	validate          *validator.Validate
	minUsernameLength int
	minPasswordLength int
}

// NewAuthValidator builds a Validator for the auth request models.
//
// Besides the stock validator/v10 tags it understands "username" and
// "password", which enforce the minimum lengths from cfg. Field names in
// the returned errors are the JSON names of the request fields.
func NewAuthValidator(cfg config.Validation) Validator {
	v := &authValidator{
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		minUsernameLength: cfg.MinUsernameLength,
		minPasswordLength: cfg.MinPasswordLength,
	}

	v.validate.RegisterTagNameFunc(jsonFieldName)
	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation(tagUsername, minRunes(v.minUsernameLength))
	_ = v.validate.RegisterValidation(tagPassword, minRunes(v.minPasswordLength))

	return v
}

// Validate checks a request model. When fields are given, only those struct
// fields (Go names) are checked.
func (v *authValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch value.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.ForgotPasswordRequest, *models.ForgotPasswordRequest,
		models.ResetPasswordRequest, *models.ResetPasswordRequest:
	default:
		return ErrUnsupportedType
	}

	if len(fields) > 0 {
		t := reflect.Indirect(reflect.ValueOf(value)).Type()
		for _, f := range fields {
			if _, ok := t.FieldByName(f); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", value, err)
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{Field: fe.Field(), Message: v.message(fe)})
	}
	return out
}

func (v *authValidator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case tagUsername:
		return fmt.Sprintf(MsgTooShortFmt, v.minUsernameLength)
	case tagPassword:
		return fmt.Sprintf(MsgTooShortFmt, v.minPasswordLength)
	case "email":
		return MsgInvalidEmail
	case "excludes":
		return MsgIncludesAt
	default:
		return "invalid value"
	}
}

func minRunes(n int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= n
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

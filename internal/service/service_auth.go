package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/mailer"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

// Operation names used as metric labels.
const (
	opRegister       = "register"
	opLogin          = "login"
	opLogout         = "logout"
	opForgotPassword = "forgot_password"
	opResetPassword  = "reset_password"
)

// dummyPassword is hashed once and verified against when a login names an
// unknown user, so that both failure paths cost one argon2id verification.
const dummyPassword = "not-a-real-password"

// authService is the concrete implementation of AuthService.
type authService struct {
	credentials store.CredentialStore
	hasher      crypto.PasswordHasher
	sessions    SessionManager
	resets      ResetTokenService
	validator   validators.Validator

	mailer    mailer.Mailer
	templates *mailer.Templates
	resetTTL  time.Duration

	metrics *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
}

// AuthDeps lists the collaborators of the auth service.
type AuthDeps struct {
	Credentials store.CredentialStore
	Hasher      crypto.PasswordHasher
	Sessions    SessionManager
	Resets      ResetTokenService
	Validator   validators.Validator
	Mailer      mailer.Mailer
	Templates   *mailer.Templates
	// ResetTTL is only used to tell the user how long a reset link is valid.
	ResetTTL time.Duration
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

// NewAuthService constructs an AuthService from deps.
//
// The returned service is safe for concurrent use.
func NewAuthService(deps AuthDeps) AuthService {
	return &authService{
		credentials: deps.Credentials,
		hasher:      deps.Hasher,
		sessions:    deps.Sessions,
		resets:      deps.Resets,
		validator:   deps.Validator,
		mailer:      deps.Mailer,
		templates:   deps.Templates,
		resetTTL:    deps.ResetTTL,
		metrics:     deps.Metrics,
	}
}

// Register creates an account and signs the caller in.
//
// Validation failures and duplicate usernames or e-mails are returned as
// field errors. Uniqueness is decided by the store, so concurrent
// registrations of the same name yield exactly one success.
func (a *authService) Register(ctx context.Context, sess *models.SessionContext, req models.RegisterRequest) (models.UserResult, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)

	fieldErrs, err := a.validate(ctx, req)
	if err != nil {
		a.metrics.ObserveOperation(opRegister, metrics.OutcomeError)
		return models.UserResult{}, err
	}
	if fieldErrs != nil {
		a.metrics.ObserveOperation(opRegister, metrics.OutcomeRejected)
		return models.UserFailure(fieldErrs...), nil
	}

	hash, err := a.hasher.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		a.metrics.ObserveOperation(opRegister, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{Username: req.Username, PasswordHash: hash}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}

	created, err := a.credentials.Create(ctx, user)
	if dup, ok := asDuplicate(err); ok {
		log.Debug().Str("func", "authService.Register").Str("field", dup.Field).Msg("duplicate field")
		a.metrics.ObserveOperation(opRegister, metrics.OutcomeRejected)
		return models.UserFailure(models.FieldError{
			Field:   dup.Field,
			Message: fmt.Sprintf(MsgAlreadyTakenFmt, dup.Field),
		}), nil
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		a.metrics.ObserveOperation(opRegister, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.establish(ctx, sess, created.ID); err != nil {
		log.Err(err).Str("func", "authService.Register").Str("user_id", created.ID).Msg("session creation failed")
		a.metrics.ObserveOperation(opRegister, metrics.OutcomeError)
		return models.UserResult{}, err
	}

	a.metrics.ObserveOperation(opRegister, metrics.OutcomeSuccess)
	return models.UserSuccess(created), nil
}

// Login verifies credentials and signs the caller in.
//
// An unknown identifier and a wrong password produce the same field error.
func (a *authService) Login(ctx context.Context, sess *models.SessionContext, req models.LoginRequest) (models.UserResult, error) {
	log := logger.FromContext(ctx)

	fieldErrs, err := a.validate(ctx, req)
	if err != nil {
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeError)
		return models.UserResult{}, err
	}
	if fieldErrs != nil {
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeRejected)
		return models.UserFailure(fieldErrs...), nil
	}

	identifier := req.UsernameOrEmail
	if strings.Contains(identifier, "@") {
		identifier = normalizeEmail(identifier)
	}

	user, err := a.credentials.FindByUsernameOrEmail(ctx, identifier)
	if errors.Is(err, store.ErrUserNotFound) {
		a.verifyDummy(ctx, req.Password)
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeRejected)
		return invalidCredentials(), nil
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search failed")
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("user search failed: %w", err)
	}

	ok, err := a.hasher.Verify(ctx, user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("password verification failed")
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("func", "authService.Login").Str("user_id", user.ID).Msg("wrong password")
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeRejected)
		return invalidCredentials(), nil
	}

	if err = a.establish(ctx, sess, user.ID); err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", user.ID).Msg("session creation failed")
		a.metrics.ObserveOperation(opLogin, metrics.OutcomeError)
		return models.UserResult{}, err
	}

	a.metrics.ObserveOperation(opLogin, metrics.OutcomeSuccess)
	return models.UserSuccess(user), nil
}

func (a *authService) Logout(ctx context.Context, sess *models.SessionContext) bool {
	log := logger.FromContext(ctx)
	defer sess.Clear(a.sessions.ClearCookie())

	session, err := a.sessions.Resolve(ctx, sess.Token)
	if err != nil {
		log.Err(err).Str("func", "authService.Logout").Msg("session lookup failed")
		a.metrics.ObserveOperation(opLogout, metrics.OutcomeError)
		return false
	}

	if err = a.sessions.Destroy(ctx, session); err != nil {
		log.Err(err).Str("func", "authService.Logout").Str("user_id", session.UserID).Msg("session destruction failed")
		a.metrics.ObserveOperation(opLogout, metrics.OutcomeError)
		return false
	}

	a.metrics.ObserveOperation(opLogout, metrics.OutcomeSuccess)
	return true
}

func (a *authService) Me(ctx context.Context, sess *models.SessionContext) (*models.User, error) {
	session, err := a.sessions.Resolve(ctx, sess.Token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Me").Msg("session lookup failed")
		return nil, err
	}
	if session.IsAnonymous() {
		return nil, nil
	}

	user, err := a.credentials.FindByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.Me").Str("user_id", session.UserID).Msg("user search failed")
		return nil, fmt.Errorf("user search failed: %w", err)
	}
	return &user, nil
}

// ForgotPassword mails a reset link to a known address. Unknown or malformed
// addresses and delivery failures are not reported to the caller.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) bool {
	log := logger.FromContext(ctx)
	req.Email = normalizeEmail(req.Email)

	if fieldErrs, err := a.validate(ctx, req); err != nil || fieldErrs != nil {
		a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeRejected)
		return true
	}

	user, err := a.credentials.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeRejected)
		return true
	}
	if err != nil {
		log.Err(err).Str("func", "authService.ForgotPassword").Msg("user search failed")
		a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeError)
		return true
	}

	token, err := a.resets.Issue(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("func", "authService.ForgotPassword").Str("user_id", user.ID).Msg("reset token issue failed")
		a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeError)
		return true
	}

	html, err := a.templates.ResetPassword(token, a.resetTTL)
	if err != nil {
		log.Err(err).Str("func", "authService.ForgotPassword").Msg("reset mail rendering failed")
		a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeError)
		return true
	}

	if err = a.mailer.Send(ctx, user.EmailValue(), html); err != nil {
		log.Err(err).Str("func", "authService.ForgotPassword").Str("user_id", user.ID).Msg("reset mail not sent")
		a.metrics.MailFailed()
		a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeError)
		return true
	}

	a.metrics.ObserveOperation(opForgotPassword, metrics.OutcomeSuccess)
	return true
}

// ResetPassword sets a new password using a mailed token and signs the
// caller in. Every other session of the user is destroyed.
func (a *authService) ResetPassword(ctx context.Context, sess *models.SessionContext, req models.ResetPasswordRequest) (models.UserResult, error) {
	log := logger.FromContext(ctx)

	fieldErrs, err := a.validate(ctx, req)
	if err != nil {
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeError)
		return models.UserResult{}, err
	}
	if fieldErrs != nil {
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeRejected)
		return models.UserFailure(fieldErrs...), nil
	}

	userID, err := a.resets.Consume(ctx, req.Token)
	if errors.Is(err, ErrInvalidOrExpiredToken) {
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeRejected)
		return invalidToken(), nil
	}
	if err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Msg("reset token lookup failed")
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeError)
		return models.UserResult{}, err
	}

	if _, err = a.credentials.FindByID(ctx, userID); errors.Is(err, store.ErrUserNotFound) {
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeRejected)
		return invalidToken(), nil
	} else if err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Str("user_id", userID).Msg("user search failed")
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("user search failed: %w", err)
	}

	hash, err := a.hasher.Hash(ctx, req.NewPassword)
	if err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Msg("password hashing failed")
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.credentials.UpdatePassword(ctx, userID, hash)
	if errors.Is(err, store.ErrUserNotFound) {
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeRejected)
		return invalidToken(), nil
	}
	if err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Str("user_id", userID).Msg("password update failed")
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeError)
		return models.UserResult{}, fmt.Errorf("password update failed: %w", err)
	}

	if err = a.sessions.DestroyAllForUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Str("user_id", userID).Msg("old sessions not destroyed")
	}

	if err = a.establish(ctx, sess, userID); err != nil {
		log.Err(err).Str("func", "authService.ResetPassword").Str("user_id", userID).Msg("session creation failed")
		a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeError)
		return models.UserResult{}, err
	}

	a.metrics.ObserveOperation(opResetPassword, metrics.OutcomeSuccess)
	return models.UserSuccess(user), nil
}

func (a *authService) establish(ctx context.Context, sess *models.SessionContext, userID string) error {
	_, cookie, err := a.sessions.Create(ctx, userID)
	if err != nil {
		return err
	}
	sess.Establish(cookie)
	return nil
}

// validate returns field errors for user mistakes and an error only when the
// validator itself could not run.
func (a *authService) validate(ctx context.Context, req any) ([]models.FieldError, error) {
	err := a.validator.Validate(ctx, req)
	if err == nil {
		return nil, nil
	}
	if fieldErrs, ok := validators.AsFieldErrors(err); ok {
		return fieldErrs, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

func (a *authService) verifyDummy(ctx context.Context, password string) {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(ctx, dummyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "authService.verifyDummy").Msg("dummy hash not computed")
			return
		}
		a.dummyHash = hash
	})
	if a.dummyHash == "" {
		return
	}
	_, _ = a.hasher.Verify(ctx, a.dummyHash, password)
}

func asDuplicate(err error) (*store.DuplicateFieldError, bool) {
	var dup *store.DuplicateFieldError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}

func invalidCredentials() models.UserResult {
	return models.UserFailure(models.FieldError{Field: FieldUsernameOrEmail, Message: MsgInvalidCredentials})
}

func invalidToken() models.UserResult {
	return models.UserFailure(models.FieldError{Field: FieldToken, Message: MsgTokenInvalid})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

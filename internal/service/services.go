package service

import (
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/mailer"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/validators"
	"github.com/MKhiriev/go-session-auth/models"
)

type Services struct {
	AuthService    AuthService
	SessionManager SessionManager
	HealthService  HealthService
}

func NewServices(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	mail mailer.Mailer,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	build models.AppBuildInfo,
) (*Services, error) {
	templates, err := mailer.NewTemplates(cfg.App.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("error loading mail templates: %w", err)
	}

	sessions := NewSessionManager(storages.KeyValueStore, cfg.Session, cfg.App.IsProduction())

	return &Services{
		AuthService: NewAuthService(AuthDeps{
			Credentials: storages.CredentialStore,
			Hasher:      hasher,
			Sessions:    sessions,
			Resets:      NewResetTokenService(storages.KeyValueStore, cfg.Reset, cfg.Session.Secret),
			Validator:   validators.NewAuthValidator(cfg.Validation),
			Mailer:      mail,
			Templates:   templates,
			ResetTTL:    cfg.Reset.TokenTTL,
			Metrics:     m,
		}),
		SessionManager: sessions,
		HealthService:  NewHealthService(build, storages),
	}, nil
}

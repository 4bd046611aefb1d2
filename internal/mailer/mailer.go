package mailer

import (
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// NewMailer selects the implementation named by cfg.Provider.
func NewMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	switch cfg.Provider {
	case config.MailProviderLog:
		return NewLogMailer(log, cfg.Subject), nil
	case config.MailProviderResend:
		return NewResendMailer(cfg.APIKey, cfg.From, cfg.Subject), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

package mailer

import (
	"context"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// logMailer writes messages to the log instead of delivering them.
// Used in development.
type logMailer struct {
	log     *logger.Logger
	subject string
}

// NewLogMailer returns a Mailer that only logs.
func NewLogMailer(log *logger.Logger, subject string) Mailer {
	return &logMailer{log: log, subject: subject}
}

func (m *logMailer) Send(ctx context.Context, to, html string) error {
	if to == "" {
		return ErrEmptyRecipient
	}
	m.log.Info().
		Str("func", "logMailer.Send").
		Str("to", to).
		Str("subject", m.subject).
		Str("html", html).
		Msg("e-mail not sent, logged instead")
	return nil
}

package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

// emailSender is the part of the Resend client used here.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type resendMailer struct {
	emails  emailSender
	from    string
	subject string
}

// NewResendMailer sends mail through the Resend API.
func NewResendMailer(apiKey, from, subject string) Mailer {
	client := resend.NewClient(apiKey)
	return newResendMailer(client.Emails, from, subject)
}

func newResendMailer(emails emailSender, from, subject string) *resendMailer {
	return &resendMailer{emails: emails, from: from, subject: subject}
}

func (m *resendMailer) Send(ctx context.Context, to, html string) error {
	if to == "" {
		return ErrEmptyRecipient
	}

	resp, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: m.subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	logger.FromContext(ctx).Debug().Str("func", "resendMailer.Send").Str("id", resp.Id).Msg("e-mail accepted by provider")
	return nil
}

// Package mailer sends the outbound e-mails of the auth server.
package mailer

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers an HTML message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, html string) error
}

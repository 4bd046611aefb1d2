package mailer

import "errors"

var (
	ErrUnknownProvider = errors.New("unknown mail provider")
	ErrEmptyRecipient  = errors.New("empty recipient")
	ErrSendFailed      = errors.New("sending e-mail failed")
	ErrRenderTemplate  = errors.New("rendering e-mail template failed")
)

package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates renders e-mail bodies.
type Templates struct {
	resetPassword *template.Template
	baseURL       string
}

// NewTemplates parses the embedded templates. baseURL is the public front-end
// URL used to build links.
func NewTemplates(baseURL string) (*Templates, error) {
	t, err := template.ParseFS(templateFS, "templates/reset_password.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderTemplate, err)
	}
	return &Templates{
		resetPassword: t,
		baseURL:       strings.TrimRight(baseURL, "/"),
	}, nil
}

// ResetLink returns <baseURL>/change-password/<token>.
func (t *Templates) ResetLink(token string) string {
	return t.baseURL + "/change-password/" + token
}

// ResetPassword renders the password-reset message for token.
func (t *Templates) ResetPassword(token string, validFor time.Duration) (string, error) {
	var buf bytes.Buffer
	err := t.resetPassword.Execute(&buf, struct {
		Link     string
		ValidFor string
	}{
		Link:     t.ResetLink(token),
		ValidFor: humanDuration(validFor),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderTemplate, err)
	}
	return buf.String(), nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d >= 24*time.Hour && d%(24*time.Hour) == 0:
		days := int(d / (24 * time.Hour))
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	case d >= time.Hour && d%time.Hour == 0:
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	default:
		return d.String()
	}
}

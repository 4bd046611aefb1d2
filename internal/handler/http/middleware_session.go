package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
)

// withSession attaches a models.SessionContext built from the session
// cookie to the request context. Resolution of the cookie is left to the
// services.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string
		if c, err := r.Cookie(h.cookieName); err == nil {
			token = c.Value
		}

		ctx := utils.WithSessionContext(r.Context(), models.NewSessionContext(token))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

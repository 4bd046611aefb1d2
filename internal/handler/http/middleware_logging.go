package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rw.statusCode()).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Send()
	})
}

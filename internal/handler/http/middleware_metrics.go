package http

import "net/http"

func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.RequestStarted()
		defer h.metrics.RequestFinished()

		next.ServeHTTP(w, r)
	})
}

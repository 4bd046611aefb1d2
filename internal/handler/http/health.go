package http

import (
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/utils"
)

// health answers 200 when the database and Redis respond to pings.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.HealthService.Check(r.Context())
	status := http.StatusOK
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		status = statusFromError(err)
	}

	utils.WriteJSON(w, resp, status)
}

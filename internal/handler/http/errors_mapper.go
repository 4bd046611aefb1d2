package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-session-auth/internal/service"
)

// errorStatusMap lists infrastructure errors that deserve a status other
// than 500. User mistakes never reach this map; they are returned as field
// errors with status 200.
var errorStatusMap = map[error]int{
	service.ErrDependencyUnavailable: http.StatusServiceUnavailable,
	context.DeadlineExceeded:         http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

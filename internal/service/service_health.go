package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/models"
)

// Pinger reports whether a backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports build information and backend availability.
type HealthService interface {
	Check(ctx context.Context) (models.HealthResponse, error)
}

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

type healthService struct {
	build  models.AppBuildInfo
	pinger Pinger
}

func NewHealthService(build models.AppBuildInfo, pinger Pinger) HealthService {
	return &healthService{build: build, pinger: pinger}
}

// Check pings the backends. The response is filled even when err is not nil.
func (s *healthService) Check(ctx context.Context) (models.HealthResponse, error) {
	resp := models.HealthResponse{
		Status:  HealthStatusOK,
		Version: s.build.BuildVersion(),
		Commit:  s.build.BuildCommit(),
	}

	if err := s.pinger.Ping(ctx); err != nil {
		resp.Status = HealthStatusUnavailable
		return resp, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return resp, nil
}

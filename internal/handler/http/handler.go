package http

import (
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/metrics"
	"github.com/MKhiriev/go-session-auth/internal/service"
)

// maxBodyBytes bounds request bodies of the JSON endpoints.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	cookieName     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		cookieName:     cfg.Session.CookieName,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

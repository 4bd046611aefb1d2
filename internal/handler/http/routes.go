package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/healthz", h.health)
	router.Method("GET", "/metrics", h.metrics.Handler())

	// session-aware routes
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

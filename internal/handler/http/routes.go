package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/api/validate", h.validate)
	router.Get("/api/version", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

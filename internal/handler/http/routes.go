package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-tender-search/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, metrics.Middleware(), h.withRecover)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Post("/api/search", h.search)
		r.Get("/api/version", h.getServerVersion)
	})

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.MethodNotAllowed(methodNotAllowed(router))
	router.NotFound(notFound)

	return router
}

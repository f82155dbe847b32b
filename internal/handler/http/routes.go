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

	// every operation is a POST with an action field in the body
	router.Post("/api/sheets", h.actions)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

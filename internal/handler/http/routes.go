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

	router.Post("/keypair", h.generateKeypair)
	router.Post("/token/create", h.createToken)
	router.Post("/token/mint", h.mintToken)
	router.Get("/health", h.health)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package tokenhttp

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the token endpoints:
//
//	GET  /health
//	POST /tokens/{variant}
//	POST /tokens/{variant}/verify
//
// Every request passes through RequestID.
func NewRouter(h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)

	r.Get("/health", h.Health)
	r.Route("/tokens/{variant}", func(tr chi.Router) {
		tr.Post("/", h.Issue)
		tr.Post("/verify", h.Verify)
	})

	return r
}

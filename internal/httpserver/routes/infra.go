package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dart-sh/dart/internal/httpserver/deps"
	"github.com/dart-sh/dart/internal/httpserver/handlers"
)

func init() { Register(registerInfra) }

func registerInfra(r chi.Router, d deps.Deps) {
	r.Get("/api/healthz", handlers.Healthz(d))
	r.Get("/api/readyz", handlers.Readyz(d))
	r.Get("/api/status", handlers.Status(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dart-sh/dart/internal/httpserver/deps"
	"github.com/dart-sh/dart/internal/httpserver/handlers"
	"github.com/dart-sh/dart/internal/httpserver/mw"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	)
	guarded.Get("/api/search", handlers.Search(d))
	guarded.Get("/api/resolve", handlers.Resolve(d))
	guarded.Get("/api/open", handlers.Open(d))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dart-sh/dart/internal/httpserver/deps"
	"github.com/dart-sh/dart/internal/httpserver/handlers"
	"github.com/dart-sh/dart/internal/httpserver/mw"
)

func init() { Register(registerReload) }

func registerReload(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             2,
			RefillPerIPPerMin: 2,
			TrustProxy:        d.TrustProxy,
		}),
	).Post("/api/reload", handlers.Reload(d))
}

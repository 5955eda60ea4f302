package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dart-sh/dart/internal/domain"
	"github.com/dart-sh/dart/internal/httpserver/deps"
	"github.com/dart-sh/dart/internal/logger"
	redisstore "github.com/dart-sh/dart/internal/store/redis"
)

type resolveResponse struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Target string `json:"target"`
}

// Resolve picks the top-ranked entry for ?q= and returns its fully resolved
// target string, with the keyword parameter substituted and percent-encoded
// where the entry asks for it. The caller hands the target to its opener;
// nothing is executed here.
func Resolve(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, query, ok := topMatch(w, r, d)
		if !ok {
			return
		}

		target := resolveCached(r, d, entry, query)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resolveResponse{
			Name:   domain.ResolveName(entry, query),
			Kind:   entry.Target.Kind.String(),
			Target: target,
		})
	}
}

// Open resolves like Resolve but answers with a redirect when the target is
// an http(s) URL, which makes the service usable as a browser keyword
// engine. Non-URL targets fall back to the JSON answer.
func Open(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, query, ok := topMatch(w, r, d)
		if !ok {
			return
		}

		target := resolveCached(r, d, entry, query)

		if entry.Target.Kind != domain.KindSystem && isHTTPURL(target) {
			d.Logger.Info("open redirect",
				logger.String("query", query.Raw),
				logger.String("entry", entry.Name))
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resolveResponse{
			Name:   domain.ResolveName(entry, query),
			Kind:   entry.Target.Kind.String(),
			Target: target,
		})
	}
}

// topMatch ranks ?q= and returns the best entry. Writes the error response
// and returns ok=false when there is nothing to resolve.
func topMatch(w http.ResponseWriter, r *http.Request, d deps.Deps) (*domain.Entry, domain.Query, bool) {
	raw := r.URL.Query().Get("q")

	db := d.Snapshot.Current()
	if db == nil {
		http.Error(w, "entry database not loaded", http.StatusServiceUnavailable)
		return nil, domain.Query{}, false
	}

	query := domain.ParseQuery(raw)
	if query.IsEmpty() {
		http.Error(w, "empty query", http.StatusBadRequest)
		return nil, domain.Query{}, false
	}

	matches := domain.Rank(db, query, 1)
	if len(matches) == 0 {
		http.Error(w, "no matching entry", http.StatusNotFound)
		return nil, domain.Query{}, false
	}
	return matches[0].Entry, query, true
}

// resolveCached resolves the target, consulting and filling the redis
// resolution cache when available. Cache errors never fail the request.
func resolveCached(r *http.Request, d deps.Deps, entry *domain.Entry, query domain.Query) string {
	if d.Store == nil {
		return domain.ResolveTarget(entry, query)
	}

	ctx := r.Context()
	if cached, err := d.Store.GetCachedResolution(ctx, query.Raw); err == nil && cached != "" {
		return cached
	}

	target := domain.ResolveTarget(entry, query)
	if err := d.Store.CacheResolution(ctx, query.Raw, target, redisstore.DefaultCacheTTL); err != nil {
		d.Logger.Debug("failed to cache resolution", logger.Error(err))
	}
	return target
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

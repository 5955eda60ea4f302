package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dart-sh/dart/internal/domain"
	"github.com/dart-sh/dart/internal/httpserver/deps"
	"github.com/dart-sh/dart/internal/logger"
)

type searchResult struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
	Score       int    `json:"score"`
}

type searchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total_entries"`
	Results []searchResult `json:"results"`
}

// Search ranks the installed database against ?q= and returns the ordered
// result list. An empty query returns the entry count and no results.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("q")

		db := d.Snapshot.Current()
		if db == nil {
			http.Error(w, "entry database not loaded", http.StatusServiceUnavailable)
			return
		}

		query := domain.ParseQuery(raw)
		limit := d.Snapshot.Settings().Limit(d.MaxResults)
		matches := domain.Rank(db, query, limit)

		d.Logger.Debug("search",
			logger.String("query", raw),
			logger.Int("matches", len(matches)))

		results := make([]searchResult, len(matches))
		for i, m := range matches {
			results[i] = searchResult{
				Name:        domain.ResolveName(m.Entry, query),
				Kind:        m.Entry.Target.Kind.String(),
				Description: m.Entry.Description,
				Icon:        m.Entry.Icon,
				Keyword:     m.Entry.Keyword,
				Score:       m.Score,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(searchResponse{
			Query:   raw,
			Total:   db.Len(),
			Results: results,
		})
	}
}

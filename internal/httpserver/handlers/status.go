package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dart-sh/dart/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	EntriesLoaded *int   `json:"entries_loaded,omitempty"`
	LastReload    string `json:"last_reload,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type statusResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Status reports the state of the entry database and the optional redis
// layer.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		entriesCount := d.Snapshot.Count()
		lastReload := "never"
		if t := d.Snapshot.LastReload(); !t.IsZero() {
			lastReload = t.Format(time.RFC3339)
		}

		components := map[string]componentStatus{
			"database": {
				OK:            d.Snapshot.Current() != nil,
				EntriesLoaded: &entriesCount,
				LastReload:    lastReload,
			},
			"redis": checkRedis(d),
		}

		_ = json.NewEncoder(w).Encode(statusResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	if db := components["database"]; !db.OK {
		return "critical"
	}
	if rd := components["redis"]; !rd.OK && rd.Error != "disabled" {
		return "degraded"
	}
	return "ok"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{
			OK:     false,
			Impact: "snapshot-persistence-disabled",
			Error:  "disabled",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Impact: "snapshot-persistence-unavailable",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true}
}

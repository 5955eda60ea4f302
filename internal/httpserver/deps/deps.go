package deps

import (
	"time"

	"github.com/dart-sh/dart/internal/index"
	"github.com/dart-sh/dart/internal/logger"
	redisstore "github.com/dart-sh/dart/internal/store/redis"
)

// Deps carries the shared dependencies handed to every route.
type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	AllowedHosts  []string          // Host headers allowed to access the server
	AllowedCIDRS  []string          // IPs/CIDRs allowed to access the server
	TrustProxy    bool              // true when running behind a trusted reverse proxy
	Snapshot      *index.Snapshot   // installed entry database
	Store         *redisstore.Store // nil when redis is disabled
	MaxResults    int               // env default result bound (file config wins)
	ReloadTrigger chan struct{}     // channel to trigger a manual reload
}

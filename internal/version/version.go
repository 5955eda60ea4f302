package version

import (
	"runtime"
	"time"
)

// Set at build time via -ldflags; dev builds fall back to process start.
var (
	Version   = "dev"  // ex: v0.1.0
	Commit    = "none" // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339)
	GoVersion = runtime.Version()
)

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read once from DART_* environment
// variables at startup. File-level settings (the reserved config table of
// the entry file) are layered on top by the query path, not here.
type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	EntryFile      string        // path to the TOML entry file
	BookmarkFile   string        // path to an optional YAML bookmark file (empty = disabled)
	MaxResults     int           // default bound for ranked results (default: 5)
	ReloadInterval time.Duration // interval to reload the entry file (default: 24h)

	// Redis (optional snapshot persistence + resolution cache)
	RedisAddr        string        // empty = redis disabled
	RedisUser        string        // optional
	RedisPassword    string        // optional
	RedisDB          int           // Redis DB number
	RedisDT          time.Duration // dial timeout
	RedisRT          time.Duration // read timeout
	RedisWT          time.Duration // write timeout
	RedisPoolSize    int           // connection pool size
	RedisPingTimeout time.Duration // timeout for the startup ping

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For style headers
}

// Load reads the configuration from the environment. Missing required values
// abort the process.
func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DART_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DART_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DART_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DART_PRETTY_LOG", true),

		// Entry database
		EntryFile:      requireEnv("DART_ENTRY_FILE"),
		BookmarkFile:   getenv("DART_BOOKMARK_FILE", ""),
		MaxResults:     getenvInt("DART_MAX_RESULTS", 5),
		ReloadInterval: mustDuration("DART_RELOAD_INTERVAL", 24*time.Hour),

		// Redis settings (all optional)
		RedisAddr:        getenv("DART_REDIS_ADDR", ""),
		RedisUser:        getenv("DART_REDIS_USERNAME", "default"),
		RedisPassword:    getenv("DART_REDIS_PASSWORD", ""),
		RedisDB:          getenvInt("DART_REDIS_DB", 0),
		RedisDT:          mustDuration("DART_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:          mustDuration("DART_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:          mustDuration("DART_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:    getenvInt("DART_REDIS_POOL_SIZE", 10),
		RedisPingTimeout: mustDuration("DART_REDIS_PING_TIMEOUT", 5*time.Second),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("DART_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("DART_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("DART_TRUST_PROXY", false),
	}

	// Log config only in debug mode, with sensitive fields redacted.
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

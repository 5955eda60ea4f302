package domain

// Settings are file-level options carried by the reserved config table of the
// entry source. They are resolved once at load time and threaded explicitly;
// there is no process-wide settings state.
type Settings struct {
	// MaxResults bounds the ranked result list. Zero means "not set";
	// callers fall back to their configured default.
	MaxResults int
}

// Limit returns the effective result bound, preferring the file setting over
// the supplied default.
func (s Settings) Limit(def int) int {
	if s.MaxResults > 0 {
		return s.MaxResults
	}
	if def > 0 {
		return def
	}
	return DefaultMaxResults
}

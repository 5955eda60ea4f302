package redis

const (
	// KeySnapshot holds the persisted entry database.
	KeySnapshot = "dart:entries:snapshot"
	// KeyPrefixCache is the prefix for cached query resolutions.
	KeyPrefixCache = "dart:cache:"
)

// SnapshotKey returns the key of the persisted entry database.
func SnapshotKey() string {
	return KeySnapshot
}

// CacheKey returns the key for a cached resolution of query.
func CacheKey(query string) string {
	return KeyPrefixCache + query
}

package config

import "time"

// CacheConfig controls the Redis response cache for read-heavy GET
// endpoints such as seat maps and movie listings. Entries live for
// TTL; anything larger than MaxBodyBytes is served but not cached.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads cache settings from the CACHE_* environment
// variables with defaults tuned for seat-map polling (short TTL so
// reservations become visible quickly).
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 5*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

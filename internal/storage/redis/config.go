package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// KeyPrefix namespaces slot keys (e.g., "sqrew")
	KeyPrefix string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL for stored slots, 0 keeps them forever
	SlotTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		KeyPrefix:    "sqrew",
		PoolSize:     10,
		MinIdleConns: 2,
		SlotTTL:      0,
	}
}

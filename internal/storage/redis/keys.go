package redis

import "fmt"

// slotKey returns the Redis key for a storage slot
func slotKey(prefix, key string) string {
	if prefix == "" {
		return fmt.Sprintf("slot:%s", key)
	}
	return fmt.Sprintf("%s:slot:%s", prefix, key)
}

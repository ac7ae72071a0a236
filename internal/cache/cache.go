package cache

import "time"

// Cache stores serialized responses under string keys.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Clear()
}

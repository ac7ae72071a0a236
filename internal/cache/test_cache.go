package cache

import (
	"sync"
	"time"
)

var _ Cache = (*TestCache)(nil)

// TestCache is a map backed Cache that ignores ttl and counts hits.
type TestCache struct {
	mutex sync.Mutex
	cache map[string][]byte
	Hits  int
}

func NewTestCache() *TestCache {
	return &TestCache{
		cache: make(map[string][]byte),
	}
}

func (tc *TestCache) Get(key string) ([]byte, bool) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	if val, ok := tc.cache[key]; ok {
		tc.Hits++
		return val, true
	}
	return nil, false
}

func (tc *TestCache) Set(key string, value []byte, _ time.Duration) error {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	tc.cache[key] = value
	return nil
}

func (tc *TestCache) Clear() {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	tc.cache = make(map[string][]byte)
}

package cache

import (
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

var _ Cache = (*ResponseCache)(nil)

type ResponseCache struct {
	mainCache *freecache.Cache
}

// NewResponseCache creates a freecache backed cache of sizeMB megabytes.
// freecache itself enforces a 512KB minimum.
func NewResponseCache(sizeMB int) *ResponseCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &ResponseCache{
		mainCache: freecache.NewCache(sizeMB * megabyte),
	}
}

func (rc *ResponseCache) Get(key string) ([]byte, bool) {
	value, err := rc.mainCache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores value for ttl; a zero ttl means the entry does not expire.
func (rc *ResponseCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := rc.mainCache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		log.Debugf("response cache set [%s]: %s", key, err)
		return err
	}
	return nil
}

func (rc *ResponseCache) Clear() {
	rc.mainCache.Clear()
}

func (rc *ResponseCache) EntryCount() int64 {
	return rc.mainCache.EntryCount()
}

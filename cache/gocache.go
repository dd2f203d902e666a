package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// GoCache is an in-memory cache implementation backed by go-cache with a
// fixed capacity bound. Expired entries are purged lazily by go-cache's
// janitor; the capacity bound is enforced at write time.
type GoCache struct {
	cache      *gocache.Cache
	maxEntries int
}

// NewGoCache creates a new GoCache instance.
// defaultExpiration: TTL applied when Set is called with ttl=0
// cleanupInterval: interval for the background purge of expired items
// maxEntries: capacity bound; 0 means unbounded
func NewGoCache(defaultExpiration, cleanupInterval time.Duration, maxEntries int) *GoCache {
	return &GoCache{
		cache:      gocache.New(defaultExpiration, cleanupInterval),
		maxEntries: maxEntries,
	}
}

// Get retrieves the value stored under key
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	if !ok {
		// Stored value of an unexpected type counts as a miss
		return nil, false
	}
	return data, true
}

// Set stores value under key with the specified TTL, evicting entries
// first if the capacity bound would be exceeded
func (gc *GoCache) Set(key string, value []byte, ttl time.Duration) {
	gc.enforceCapacity(key)
	gc.cache.Set(key, value, ttl)
}

// enforceCapacity makes room for one more entry when the bound is reached.
// Expired entries are purged first; if that is not enough, arbitrary
// entries are evicted. Which entry goes is not load-bearing for callers.
func (gc *GoCache) enforceCapacity(incomingKey string) {
	if gc.maxEntries <= 0 {
		return
	}
	if _, exists := gc.cache.Get(incomingKey); exists {
		// Overwrite does not grow the cache
		return
	}
	if gc.cache.ItemCount() < gc.maxEntries {
		return
	}

	gc.cache.DeleteExpired()

	for key := range gc.cache.Items() {
		if gc.cache.ItemCount() < gc.maxEntries {
			return
		}
		gc.cache.Delete(key)
	}
}

// Delete removes the entry stored under key
func (gc *GoCache) Delete(key string) {
	gc.cache.Delete(key)
}

// Clear removes all entries
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of entries in the cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}

// DeleteExpired manually triggers deletion of expired entries
func (gc *GoCache) DeleteExpired() {
	gc.cache.DeleteExpired()
}

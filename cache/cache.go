package cache

import "time"

//go:generate mockgen -destination=mocks/cache.go -package=mock_cache . Cache

// Cache is the read-through response cache used by the gateway.
//
// Get never blocks beyond normal map lookup cost. Set overwrites any
// existing entry and resets its expiry. All invalidation is TTL driven;
// there is no partial-invalidation API because no caller needs one.
type Cache interface {
	// Get retrieves the value stored under key, reporting whether it was found
	Get(key string) ([]byte, bool)

	// Set stores value under key with the given TTL.
	// If ttl is 0 the cache's default expiration is used.
	Set(key string, value []byte, ttl time.Duration)

	// Delete removes the entry stored under key, if any
	Delete(key string)

	// Clear removes all entries
	Clear()

	// ItemCount returns the number of entries, including not-yet-purged
	// expired ones
	ItemCount() int
}

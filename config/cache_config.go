package config

import (
	"fmt"
	"time"
)

// CacheConfig configures the in-memory response cache
type CacheConfig struct {
	// DefaultExpiration is the TTL applied when a write passes ttl=0
	DefaultExpiration time.Duration `yaml:"default_expiration"`
	// CleanupInterval is how often expired entries are purged in background
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	// MaxEntries bounds the entry count; exceeding it triggers eviction
	MaxEntries int `yaml:"max_entries"`
}

func (c *CacheConfig) Validate() error {
	if c.MaxEntries < 0 {
		return fmt.Errorf("max_entries must not be negative, got %d", c.MaxEntries)
	}
	return nil
}

func (c *CacheConfig) GetDefaultExpiration() time.Duration {
	if c.DefaultExpiration > 0 {
		return c.DefaultExpiration
	}
	return 5 * time.Minute
}

func (c *CacheConfig) GetCleanupInterval() time.Duration {
	if c.CleanupInterval > 0 {
		return c.CleanupInterval
	}
	return 10 * time.Minute
}

func (c *CacheConfig) GetMaxEntries() int {
	if c.MaxEntries > 0 {
		return c.MaxEntries
	}
	return 10000
}

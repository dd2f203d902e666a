package config

import (
	"fmt"
	"time"
)

// GatewayConfig configures fetch/cache/fallback orchestration
type GatewayConfig struct {
	// RequestDelay is the fixed pause paid before every upstream call to
	// stay under the public rate limit. Cache hits never pay it.
	RequestDelay time.Duration `yaml:"request_delay"`

	PrimaryTTL  time.Duration `yaml:"primary_ttl"`  // Cache TTL for primary-sourced responses
	FallbackTTL time.Duration `yaml:"fallback_ttl"` // Shorter TTL for fallback-sourced responses

	SearchLimit int `yaml:"search_limit"` // Max results returned by the search operation
}

func (c *GatewayConfig) Validate() error {
	if c.RequestDelay < 0 {
		return fmt.Errorf("request_delay must not be negative, got %v", c.RequestDelay)
	}
	if c.FallbackTTL > 0 && c.PrimaryTTL > 0 && c.FallbackTTL > c.PrimaryTTL {
		return fmt.Errorf("fallback_ttl (%v) must not exceed primary_ttl (%v)", c.FallbackTTL, c.PrimaryTTL)
	}
	return nil
}

func (c *GatewayConfig) GetRequestDelay() time.Duration {
	if c.RequestDelay > 0 {
		return c.RequestDelay
	}
	return 1 * time.Second
}

func (c *GatewayConfig) GetPrimaryTTL() time.Duration {
	if c.PrimaryTTL > 0 {
		return c.PrimaryTTL
	}
	return 5 * time.Minute
}

func (c *GatewayConfig) GetFallbackTTL() time.Duration {
	if c.FallbackTTL > 0 {
		return c.FallbackTTL
	}
	return 1 * time.Minute
}

func (c *GatewayConfig) GetSearchLimit() int {
	if c.SearchLimit > 0 {
		return c.SearchLimit
	}
	return 20
}

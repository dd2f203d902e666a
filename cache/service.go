package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptodash/market-gateway/config"
)

// Service implements Cache on top of GoCache and plugs into the core
// service lifecycle
type Service struct {
	goCache *GoCache
	config  config.CacheConfig
}

// NewService creates a new cache service with the given configuration
func NewService(cfg config.CacheConfig) *Service {
	return &Service{
		goCache: NewGoCache(cfg.GetDefaultExpiration(), cfg.GetCleanupInterval(), cfg.GetMaxEntries()),
		config:  cfg,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

func (s *Service) Get(key string) ([]byte, bool) {
	return s.goCache.Get(key)
}

func (s *Service) Set(key string, value []byte, ttl time.Duration) {
	s.goCache.Set(key, value, ttl)
}

func (s *Service) Delete(key string) {
	s.goCache.Delete(key)
}

func (s *Service) Clear() {
	s.goCache.Clear()
}

func (s *Service) ItemCount() int {
	return s.goCache.ItemCount()
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		Items:      s.goCache.ItemCount(),
		MaxEntries: s.config.GetMaxEntries(),
	}
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	Items      int // Current number of entries
	MaxEntries int // Configured capacity bound
}

package core

import (
	"context"

	"github.com/cryptodash/market-gateway/api"
	"github.com/cryptodash/market-gateway/cache"
	"github.com/cryptodash/market-gateway/coincap"
	"github.com/cryptodash/market-gateway/coingecko"
	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/dashboard"
	"github.com/cryptodash/market-gateway/gateway"
)

// Setup creates and registers all services in dependency order
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Cache service backs every gateway operation
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// Upstream adapters: CoinGecko is the primary source, CoinCap the
	// capability-limited fallback
	primary := coingecko.NewClient(&cfg.Coingecko)
	secondary := coincap.NewClient(&cfg.Coincap)

	// Gateway service orchestrates fetch, cache and fallback
	gatewayService := gateway.NewService(cacheService, &cfg.Gateway, primary, secondary)
	registry.Register(gatewayService)

	// Dashboard controller keeps the interactive view current
	watchlistStore := dashboard.NewFileStore(cfg.Dashboard.GetWatchlistFile())
	dashboardService := dashboard.NewController(&cfg.Dashboard, gatewayService, watchlistStore)
	registry.Register(dashboardService)

	// HTTP server exposes the gateway operations
	server := api.New(cfg.GetPort(), &cfg.API, gatewayService)
	registry.Register(server)

	return registry, nil
}

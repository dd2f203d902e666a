package interfaces

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/provider.go -package=mock_interfaces . MarketProvider,MarketDataAPI

// Capability identifies one operation family a provider can serve.
// Fallback coverage is asymmetric on purpose: the gateway consults these
// flags instead of special-casing call sites.
type Capability string

const (
	CapListing      Capability = "listing"
	CapSingleLookup Capability = "single_lookup"
	CapChartLookup  Capability = "chart_lookup"
	CapSearch       Capability = "search"
)

// CapabilitySet is the set of operations a provider declares support for
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether the set contains c
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// ErrNotSupported is returned when a provider is asked for an operation
// outside its declared capability set
var ErrNotSupported = errors.New("operation not supported by provider")

// ErrNotFound is returned by providers when the upstream confirms the
// requested identifier does not exist
var ErrNotFound = errors.New("coin not found")

// MarketProvider is an upstream market-data source. Implementations
// translate the normalized parameters into provider-specific calls and
// coerce responses back into the normalized shapes.
type MarketProvider interface {
	// Name identifies the provider in logs and error messages
	Name() string

	// Capabilities returns the operations this provider can serve
	Capabilities() CapabilitySet

	// Markets fetches one page of coins, or exactly params.IDs when set
	Markets(ctx context.Context, params MarketsParams) ([]Coin, error)

	// CoinByID fetches a single coin
	CoinByID(ctx context.Context, id, currency string) (Coin, error)

	// MarketChart fetches historical chart series for one coin
	MarketChart(ctx context.Context, params ChartParams) (ChartData, error)

	// Search resolves a free-text query to lightweight results
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// MarketDataAPI is the gateway surface consumed by the HTTP handlers and
// the dashboard state controller
type MarketDataAPI interface {
	Coins(ctx context.Context, query CoinsQuery) (*CoinsResponse, CacheStatus, error)
	CoinByID(ctx context.Context, id, currency string) (*Coin, CacheStatus, error)
	Chart(ctx context.Context, params ChartParams) (*ChartData, CacheStatus, error)
	Search(ctx context.Context, query string) (*SearchResponse, CacheStatus, error)
	Watchlist(ctx context.Context, ids []string, currency string) ([]Coin, CacheStatus, error)
}

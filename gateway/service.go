package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cryptodash/market-gateway/cache"
	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/httpclient"
	"github.com/cryptodash/market-gateway/interfaces"
	"github.com/cryptodash/market-gateway/metrics"
)

// Operation names used in metrics labels and error messages
const (
	opCoins     = "coins"
	opCoin      = "coin"
	opChart     = "chart"
	opSearch    = "search"
	opWatchlist = "watchlist"
)

// Service orchestrates fetch, cache and fallback across the two upstream
// providers. All operations are cache-aside: a hit short-circuits before
// the inter-request throttle, a miss pays the throttle, calls the primary
// provider and falls back to the secondary where its capability set
// allows. Responses served by the fallback are cached under a shorter TTL
// so the primary is retried sooner.
type Service struct {
	cache     cache.Cache
	config    *config.GatewayConfig
	primary   interfaces.MarketProvider
	secondary interfaces.MarketProvider
	throttle  *Throttle
}

var _ interfaces.MarketDataAPI = (*Service)(nil)

// NewService creates the gateway service. secondary may be nil when no
// fallback source is configured.
func NewService(c cache.Cache, cfg *config.GatewayConfig, primary, secondary interfaces.MarketProvider) *Service {
	return &Service{
		cache:     c,
		config:    cfg,
		primary:   primary,
		secondary: secondary,
		throttle:  NewThrottle(cfg.GetRequestDelay()),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.primary == nil {
		return fmt.Errorf("no primary provider configured")
	}
	if s.secondary != nil {
		log.Printf("Gateway: primary provider %s, fallback provider %s", s.primary.Name(), s.secondary.Name())
	} else {
		log.Printf("Gateway: primary provider %s, no fallback configured", s.primary.Name())
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Coins returns one page of the coin listing, optionally narrowed by a
// free-text query
func (s *Service) Coins(ctx context.Context, query interfaces.CoinsQuery) (*interfaces.CoinsResponse, interfaces.CacheStatus, error) {
	if err := validateCoinsQuery(query); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	key := coinsKey(query)
	var cached interfaces.CoinsResponse
	if s.lookup(opCoins, key, &cached) {
		return &cached, interfaces.CacheStatusHit, nil
	}

	start := time.Now()
	fallback := false
	coins, err := s.listFromPrimary(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return nil, interfaces.CacheStatusMiss, err
		}
		if !s.secondaryCan(interfaces.CapListing) {
			return nil, interfaces.CacheStatusMiss, s.terminal(opCoins, err)
		}

		// The fallback serves a plain ranked page: it cannot apply the
		// free-text filter and its quotes are USD-only, so neither the
		// query nor the currency is forwarded.
		log.Printf("Gateway: primary listing failed, trying %s: %v", s.secondary.Name(), err)
		if waitErr := s.waitTurn(ctx, opCoins); waitErr != nil {
			return nil, interfaces.CacheStatusMiss, waitErr
		}
		fbCoins, fbErr := s.secondary.Markets(ctx, interfaces.MarketsParams{
			Page:    query.Page,
			PerPage: query.PerPage,
		})
		if fbErr != nil {
			return nil, interfaces.CacheStatusMiss, &UpstreamUnavailableError{
				Operation: opCoins,
				Primary:   err,
				Secondary: fbErr,
			}
		}
		coins = fbCoins
		fallback = true
		metrics.RecordFallback(opCoins)
	}
	metrics.RecordFetchDuration(opCoins, start)

	if coins == nil {
		coins = []interfaces.Coin{}
	}
	response := &interfaces.CoinsResponse{
		Coins:       coins,
		Page:        query.Page,
		PerPage:     query.PerPage,
		Total:       len(coins),
		HasNextPage: len(coins) == query.PerPage,
	}
	s.store(key, response, s.ttl(fallback))
	return response, interfaces.CacheStatusMiss, nil
}

// listFromPrimary fetches one listing page from the primary provider. A
// free-text query costs two upstream calls: search resolves ids, then a
// second call prices them. An empty search result short-circuits the
// second call.
func (s *Service) listFromPrimary(ctx context.Context, query interfaces.CoinsQuery) ([]interfaces.Coin, error) {
	if query.Query == "" {
		if err := s.waitTurn(ctx, opCoins); err != nil {
			return nil, err
		}
		return s.primary.Markets(ctx, interfaces.MarketsParams{
			Page:     query.Page,
			PerPage:  query.PerPage,
			Currency: query.Currency,
		})
	}

	if err := s.waitTurn(ctx, opCoins); err != nil {
		return nil, err
	}
	results, err := s.primary.Search(ctx, query.Query)
	if err != nil {
		return nil, err
	}
	if len(results) > query.PerPage {
		results = results[:query.PerPage]
	}
	if len(results) == 0 {
		return []interfaces.Coin{}, nil
	}

	ids := make([]string, 0, len(results))
	for _, result := range results {
		ids = append(ids, result.ID)
	}

	if err := s.waitTurn(ctx, opCoins); err != nil {
		return nil, err
	}
	return s.primary.Markets(ctx, interfaces.MarketsParams{
		Page:     1,
		PerPage:  query.PerPage,
		Currency: query.Currency,
		IDs:      ids,
	})
}

// CoinByID returns a single coin by identifier
func (s *Service) CoinByID(ctx context.Context, id, currency string) (*interfaces.Coin, interfaces.CacheStatus, error) {
	if id == "" {
		return nil, interfaces.CacheStatusMiss, &ValidationError{Param: "id", Reason: "must not be empty"}
	}
	if err := validateCurrency(currency); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	key := coinKey(id, currency)
	var cached interfaces.Coin
	if s.lookup(opCoin, key, &cached) {
		return &cached, interfaces.CacheStatusHit, nil
	}

	start := time.Now()
	if err := s.waitTurn(ctx, opCoin); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	fallback := false
	coin, err := s.primary.CoinByID(ctx, id, currency)
	if err != nil {
		if ctx.Err() != nil {
			return nil, interfaces.CacheStatusMiss, err
		}
		if !s.secondaryCan(interfaces.CapSingleLookup) {
			return nil, interfaces.CacheStatusMiss, s.terminalCoin(id, err)
		}

		// The fallback is tried even when the primary reports not-found;
		// the two providers do not index the same asset set. Quotes are
		// USD-only on that path, so the currency is not forwarded.
		log.Printf("Gateway: primary lookup of %s failed, trying %s: %v", id, s.secondary.Name(), err)
		if waitErr := s.waitTurn(ctx, opCoin); waitErr != nil {
			return nil, interfaces.CacheStatusMiss, waitErr
		}
		fbCoin, fbErr := s.secondary.CoinByID(ctx, id, "")
		if fbErr != nil {
			if errors.Is(err, interfaces.ErrNotFound) && errors.Is(fbErr, interfaces.ErrNotFound) {
				return nil, interfaces.CacheStatusMiss, &NotFoundError{ID: id, Err: err}
			}
			return nil, interfaces.CacheStatusMiss, &UpstreamUnavailableError{
				Operation: opCoin,
				Primary:   err,
				Secondary: fbErr,
			}
		}
		coin = fbCoin
		fallback = true
		metrics.RecordFallback(opCoin)
	}
	metrics.RecordFetchDuration(opCoin, start)

	s.store(key, coin, s.ttl(fallback))
	return &coin, interfaces.CacheStatusMiss, nil
}

// Chart returns historical chart series for one coin
func (s *Service) Chart(ctx context.Context, params interfaces.ChartParams) (*interfaces.ChartData, interfaces.CacheStatus, error) {
	if params.ID == "" {
		return nil, interfaces.CacheStatusMiss, &ValidationError{Param: "id", Reason: "must not be empty"}
	}
	if err := validateCurrency(params.Currency); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}
	if params.Days < 1 {
		return nil, interfaces.CacheStatusMiss, &ValidationError{Param: "days", Reason: "must be at least 1"}
	}

	key := chartKey(params)
	var cached interfaces.ChartData
	if s.lookup(opChart, key, &cached) {
		return &cached, interfaces.CacheStatusHit, nil
	}

	start := time.Now()
	if err := s.waitTurn(ctx, opChart); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	fallback := false
	data, err := s.primary.MarketChart(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			return nil, interfaces.CacheStatusMiss, err
		}
		if !s.secondaryCan(interfaces.CapChartLookup) {
			return nil, interfaces.CacheStatusMiss, s.terminal(opChart, err)
		}

		log.Printf("Gateway: primary chart fetch for %s failed, trying %s: %v", params.ID, s.secondary.Name(), err)
		if waitErr := s.waitTurn(ctx, opChart); waitErr != nil {
			return nil, interfaces.CacheStatusMiss, waitErr
		}
		fbData, fbErr := s.secondary.MarketChart(ctx, params)
		if fbErr != nil {
			return nil, interfaces.CacheStatusMiss, &UpstreamUnavailableError{
				Operation: opChart,
				Primary:   err,
				Secondary: fbErr,
			}
		}
		data = fbData
		fallback = true
		metrics.RecordFallback(opChart)
	}
	metrics.RecordFetchDuration(opChart, start)

	s.store(key, data, s.ttl(fallback))
	return &data, interfaces.CacheStatusMiss, nil
}

// Search resolves a free-text query to lightweight results. Cache hits
// keep serving the timestamp of the original upstream call.
func (s *Service) Search(ctx context.Context, query string) (*interfaces.SearchResponse, interfaces.CacheStatus, error) {
	if query == "" {
		return nil, interfaces.CacheStatusMiss, &ValidationError{Param: "query", Reason: "must not be empty"}
	}

	key := searchKey(query)
	var cached interfaces.SearchResponse
	if s.lookup(opSearch, key, &cached) {
		return &cached, interfaces.CacheStatusHit, nil
	}

	start := time.Now()
	if err := s.waitTurn(ctx, opSearch); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	fallback := false
	results, err := s.primary.Search(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return nil, interfaces.CacheStatusMiss, err
		}
		if !s.secondaryCan(interfaces.CapSearch) {
			return nil, interfaces.CacheStatusMiss, s.terminal(opSearch, err)
		}

		log.Printf("Gateway: primary search for %q failed, trying %s: %v", query, s.secondary.Name(), err)
		if waitErr := s.waitTurn(ctx, opSearch); waitErr != nil {
			return nil, interfaces.CacheStatusMiss, waitErr
		}
		fbResults, fbErr := s.secondary.Search(ctx, query)
		if fbErr != nil {
			return nil, interfaces.CacheStatusMiss, &UpstreamUnavailableError{
				Operation: opSearch,
				Primary:   err,
				Secondary: fbErr,
			}
		}
		results = fbResults
		fallback = true
		metrics.RecordFallback(opSearch)
	}
	metrics.RecordFetchDuration(opSearch, start)

	if limit := s.config.GetSearchLimit(); len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []interfaces.SearchResult{}
	}
	response := &interfaces.SearchResponse{
		Coins:     results,
		Query:     query,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	s.store(key, response, s.ttl(fallback))
	return response, interfaces.CacheStatusMiss, nil
}

// Watchlist returns current market rows for exactly the given ids
func (s *Service) Watchlist(ctx context.Context, ids []string, currency string) ([]interfaces.Coin, interfaces.CacheStatus, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	// An empty watchlist is a complete answer: no cache entry, no
	// upstream call
	if len(ids) == 0 {
		return []interfaces.Coin{}, interfaces.CacheStatusMiss, nil
	}

	key := watchlistKey(ids, currency)
	var cached []interfaces.Coin
	if s.lookup(opWatchlist, key, &cached) {
		return cached, interfaces.CacheStatusHit, nil
	}

	start := time.Now()
	if err := s.waitTurn(ctx, opWatchlist); err != nil {
		return nil, interfaces.CacheStatusMiss, err
	}

	coins, err := s.primary.Markets(ctx, interfaces.MarketsParams{
		Page:     1,
		PerPage:  len(ids),
		Currency: currency,
		IDs:      ids,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, interfaces.CacheStatusMiss, err
		}
		// The fallback cannot filter by id set, so batched lookups have
		// no secondary path
		return nil, interfaces.CacheStatusMiss, s.terminal(opWatchlist, err)
	}
	metrics.RecordFetchDuration(opWatchlist, start)

	if coins == nil {
		coins = []interfaces.Coin{}
	}
	s.store(key, coins, s.config.GetPrimaryTTL())
	return coins, interfaces.CacheStatusMiss, nil
}

// lookup reads and decodes a cache entry, recording hit/miss metrics. An
// entry that fails to decode is dropped and counted as a miss.
func (s *Service) lookup(operation, key string, out any) bool {
	data, found := s.cache.Get(key)
	if !found {
		metrics.RecordCacheMiss(operation)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Gateway: dropping undecodable cache entry %s: %v", key, err)
		s.cache.Delete(key)
		metrics.RecordCacheMiss(operation)
		return false
	}
	metrics.RecordCacheHit(operation)
	return true
}

// store encodes value and writes it under key with the given TTL
func (s *Service) store(key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Gateway: failed to encode cache entry %s: %v", key, err)
		return
	}
	s.cache.Set(key, data, ttl)
}

// waitTurn pays the inter-request delay before an upstream call
func (s *Service) waitTurn(ctx context.Context, operation string) error {
	start := time.Now()
	if err := s.throttle.Wait(ctx); err != nil {
		return err
	}
	metrics.RecordThrottleWait(operation, time.Since(start))
	return nil
}

func (s *Service) secondaryCan(capability interfaces.Capability) bool {
	return s.secondary != nil && s.secondary.Capabilities().Has(capability)
}

func (s *Service) ttl(fallback bool) time.Duration {
	if fallback {
		return s.config.GetFallbackTTL()
	}
	return s.config.GetPrimaryTTL()
}

// terminal classifies a final upstream failure for operations without an
// eligible fallback
func (s *Service) terminal(operation string, err error) error {
	if httpclient.IsTimeout(err) {
		return &UpstreamTimeoutError{Operation: operation, Err: err}
	}
	return &UpstreamUnavailableError{Operation: operation, Primary: err}
}

func (s *Service) terminalCoin(id string, err error) error {
	if errors.Is(err, interfaces.ErrNotFound) {
		return &NotFoundError{ID: id, Err: err}
	}
	return s.terminal(opCoin, err)
}

func validateCurrency(currency string) error {
	if !interfaces.IsSupportedCurrency(currency) {
		return &ValidationError{Param: "currency", Reason: fmt.Sprintf("%q is not a supported quote currency", currency)}
	}
	return nil
}

func validateCoinsQuery(q interfaces.CoinsQuery) error {
	if q.Page < 1 {
		return &ValidationError{Param: "page", Reason: "must be at least 1"}
	}
	if q.PerPage < 1 {
		return &ValidationError{Param: "perPage", Reason: "must be at least 1"}
	}
	return validateCurrency(q.Currency)
}

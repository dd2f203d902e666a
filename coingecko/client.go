package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/httpclient"
	"github.com/cryptodash/market-gateway/interfaces"
	"github.com/cryptodash/market-gateway/metrics"
)

// ProviderName identifies this adapter in logs and errors
const ProviderName = "coingecko"

// Client is the primary upstream adapter. CoinGecko's payloads already
// match the normalized shapes, so its job is endpoint construction plus
// bounded per-call timeouts.
type Client struct {
	config *config.CoingeckoConfig

	// Chart payloads are larger and get a longer timeout than the rest
	httpClient      *httpclient.Client
	chartHTTPClient *httpclient.Client
}

// NewClient creates a new CoinGecko adapter
func NewClient(cfg *config.CoingeckoConfig) *Client {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceCoins)

	opts := httpclient.DefaultRetryOptions()
	opts.LogPrefix = "CoinGecko"
	opts.MaxRetries = cfg.GetMaxRetries()
	opts.RequestTimeout = cfg.GetRequestTimeout()

	chartOpts := opts
	chartOpts.RequestTimeout = cfg.GetChartRequestTimeout()

	return &Client{
		config:          cfg,
		httpClient:      httpclient.New(opts, metricsWriter),
		chartHTTPClient: httpclient.New(chartOpts, metrics.NewMetricsWriter(metrics.ServiceChart)),
	}
}

// Name implements interfaces.MarketProvider
func (c *Client) Name() string {
	return ProviderName
}

// Capabilities implements interfaces.MarketProvider
func (c *Client) Capabilities() interfaces.CapabilitySet {
	return interfaces.NewCapabilitySet(
		interfaces.CapListing,
		interfaces.CapSingleLookup,
		interfaces.CapChartLookup,
		interfaces.CapSearch,
	)
}

// Markets fetches one page of the ranked listing, or exactly params.IDs
// when set
func (c *Client) Markets(ctx context.Context, params interfaces.MarketsParams) ([]interfaces.Coin, error) {
	builder := NewMarketsRequestBuilder(c.config.GetBaseURL())

	if params.Page > 0 {
		builder.WithPage(params.Page)
	}
	if params.PerPage > 0 {
		builder.WithPerPage(params.PerPage)
	}
	builder.
		WithIDs(params.IDs).
		WithCurrency(params.Currency).
		WithApiKey(c.config.APIKey)

	request, err := builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("building markets request: %w", err)
	}

	body, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	var coins []interfaces.Coin
	if err := json.Unmarshal(body, &coins); err != nil {
		log.Printf("CoinGecko: Error parsing markets response: %v", err)
		return nil, fmt.Errorf("parsing markets response: %w", err)
	}

	log.Printf("CoinGecko: Fetched %d coins (page=%d, ids=%d)", len(coins), params.Page, len(params.IDs))
	return coins, nil
}

// CoinByID fetches a single coin via a one-id markets call.
// Zero rows means the id does not exist upstream.
func (c *Client) CoinByID(ctx context.Context, id, currency string) (interfaces.Coin, error) {
	coins, err := c.Markets(ctx, interfaces.MarketsParams{
		Currency: currency,
		IDs:      []string{id},
	})
	if err != nil {
		return interfaces.Coin{}, err
	}
	if len(coins) == 0 {
		return interfaces.Coin{}, fmt.Errorf("coin %s: %w", id, interfaces.ErrNotFound)
	}
	return coins[0], nil
}

// MarketChart fetches historical chart series for one coin
func (c *Client) MarketChart(ctx context.Context, params interfaces.ChartParams) (interfaces.ChartData, error) {
	builder := NewChartRequestBuilder(c.config.GetBaseURL(), params.ID)
	builder.
		WithDays(params.Days).
		WithCurrency(params.Currency).
		WithApiKey(c.config.APIKey)

	request, err := builder.Build(ctx)
	if err != nil {
		return interfaces.ChartData{}, fmt.Errorf("building chart request: %w", err)
	}

	body, err := c.chartHTTPClient.Do(request)
	if err != nil {
		return interfaces.ChartData{}, err
	}

	var chart interfaces.ChartData
	if err := json.Unmarshal(body, &chart); err != nil {
		log.Printf("CoinGecko: Error parsing chart response: %v", err)
		return interfaces.ChartData{}, fmt.Errorf("parsing chart response: %w", err)
	}

	log.Printf("CoinGecko: Fetched chart for %s with %d price points", params.ID, len(chart.Prices))
	return chart, nil
}

// Search resolves a free-text query to lightweight results
func (c *Client) Search(ctx context.Context, query string) ([]interfaces.SearchResult, error) {
	builder := NewSearchRequestBuilder(c.config.GetBaseURL())
	builder.
		WithQuery(query).
		WithApiKey(c.config.APIKey)

	request, err := builder.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	body, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("CoinGecko: Error parsing search response: %v", err)
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	results := make([]interfaces.SearchResult, 0, len(parsed.Coins))
	for _, coin := range parsed.Coins {
		results = append(results, coin.toSearchResult())
	}

	log.Printf("CoinGecko: Search %q returned %d results", query, len(results))
	return results, nil
}

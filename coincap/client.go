package coincap

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/httpclient"
	"github.com/cryptodash/market-gateway/interfaces"
	"github.com/cryptodash/market-gateway/metrics"
)

// ProviderName identifies this adapter in logs and errors
const ProviderName = "coincap"

// Client is the secondary (fallback) upstream adapter. CoinCap's schema
// differs structurally from the normalized shapes: string numerics, no
// pagination, no icons, USD quotes only. The adapter never sees the
// caller's currency selection; cross-currency results are approximate
// and that is an accepted limitation of the fallback path.
type Client struct {
	config     *config.CoincapConfig
	httpClient *httpclient.Client
}

// NewClient creates a new CoinCap adapter
func NewClient(cfg *config.CoincapConfig) *Client {
	opts := httpclient.DefaultRetryOptions()
	opts.LogPrefix = "CoinCap"
	opts.MaxRetries = cfg.GetMaxRetries()
	opts.RequestTimeout = cfg.GetRequestTimeout()

	return &Client{
		config:     cfg,
		httpClient: httpclient.New(opts, metrics.NewMetricsWriter(metrics.ServiceCoincap)),
	}
}

// Name implements interfaces.MarketProvider
func (c *Client) Name() string {
	return ProviderName
}

// Capabilities implements interfaces.MarketProvider. Chart history and
// free-text search are deliberately not declared: this provider cannot
// serve them and the gateway must not fall back to it for those.
func (c *Client) Capabilities() interfaces.CapabilitySet {
	return interfaces.NewCapabilitySet(
		interfaces.CapListing,
		interfaces.CapSingleLookup,
	)
}

// Markets emulates pagination by fetching a fixed-size window and slicing
// it locally. Ranks are synthesized from the page-relative offset; each
// rank is unique within the returned page.
func (c *Client) Markets(ctx context.Context, params interfaces.MarketsParams) ([]interfaces.Coin, error) {
	window := c.config.GetWindowSize()

	requestURL := fmt.Sprintf("%s/assets?limit=%d", c.config.GetBaseURL(), window)
	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var parsed assetsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("CoinCap: Error parsing assets response: %v", err)
		return nil, fmt.Errorf("parsing assets response: %w", err)
	}

	startIndex := (params.Page - 1) * params.PerPage
	endIndex := startIndex + params.PerPage
	if startIndex >= len(parsed.Data) {
		return []interfaces.Coin{}, nil
	}
	if endIndex > len(parsed.Data) {
		endIndex = len(parsed.Data)
	}

	coins := make([]interfaces.Coin, 0, endIndex-startIndex)
	for i, asset := range parsed.Data[startIndex:endIndex] {
		coins = append(coins, asset.toCoin(startIndex+i+1))
	}

	log.Printf("CoinCap: Served %d coins for page %d from a %d-asset window", len(coins), params.Page, len(parsed.Data))
	return coins, nil
}

// CoinByID fetches a single asset; the rank comes from the provider here,
// parsed from its string form
func (c *Client) CoinByID(ctx context.Context, id, currency string) (interfaces.Coin, error) {
	requestURL := fmt.Sprintf("%s/assets/%s", c.config.GetBaseURL(), url.PathEscape(id))
	body, err := c.get(ctx, requestURL)
	if err != nil {
		if code, ok := httpclient.StatusCode(err); ok && code == http.StatusNotFound {
			return interfaces.Coin{}, fmt.Errorf("asset %s: %w", id, interfaces.ErrNotFound)
		}
		return interfaces.Coin{}, err
	}

	var parsed assetResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("CoinCap: Error parsing asset response: %v", err)
		return interfaces.Coin{}, fmt.Errorf("parsing asset response: %w", err)
	}
	if parsed.Data.ID == "" {
		return interfaces.Coin{}, fmt.Errorf("asset %s: %w", id, interfaces.ErrNotFound)
	}

	return parsed.Data.toCoin(parsed.Data.providerRank()), nil
}

// MarketChart implements interfaces.MarketProvider; the upstream carries
// no historical series
func (c *Client) MarketChart(ctx context.Context, params interfaces.ChartParams) (interfaces.ChartData, error) {
	return interfaces.ChartData{}, fmt.Errorf("%s: market chart: %w", ProviderName, interfaces.ErrNotSupported)
}

// Search implements interfaces.MarketProvider; the upstream has no
// free-text search
func (c *Client) Search(ctx context.Context, query string) ([]interfaces.SearchResult, error) {
	return nil, fmt.Errorf("%s: search: %w", ProviderName, interfaces.ErrNotSupported)
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	return c.httpClient.Do(request)
}

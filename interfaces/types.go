package interfaces

// Coin is the normalized market row shared by both upstream providers.
// The primary provider's payload maps onto it directly; the secondary
// adapter coerces its asset schema into the same shape.
type Coin struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Symbol                   string  `json:"symbol"` // lower-cased
	CurrentPrice             float64 `json:"current_price"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	Image                    string  `json:"image"`
	MarketCapRank            int     `json:"market_cap_rank"`
	LastUpdated              string  `json:"last_updated"`
}

// CoinsResponse is one page of the coin listing.
//
// HasNextPage is a heuristic: true iff the page came back full. An
// exactly-full last page reads as "more data"; upstream provides no total
// count to correct it, so callers must treat it as a lower-bound signal.
type CoinsResponse struct {
	Coins       []Coin `json:"coins"`
	Page        int    `json:"page"`
	PerPage     int    `json:"perPage"`
	Total       int    `json:"total"`
	HasNextPage bool   `json:"hasNextPage"`
}

// SearchResult is a lightweight search row; deliberately carries no price
// fields
type SearchResult struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}

// SearchResponse wraps search results with the query and the time the
// upstream call was made. Cache hits keep serving the original timestamp:
// it is "as of" metadata, not current time.
type SearchResponse struct {
	Coins     []SearchResult `json:"coins"`
	Query     string         `json:"query"`
	Timestamp string         `json:"timestamp"`
}

// ChartData holds three parallel time series of [timestampMillis, value]
// pairs, ascending by timestamp. Sampling granularity is decided upstream.
type ChartData struct {
	Prices       [][2]float64 `json:"prices"`
	MarketCaps   [][2]float64 `json:"market_caps"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
}

// MarketsParams are the effective parameters of a listing fetch
type MarketsParams struct {
	Page     int
	PerPage  int
	Currency string
	IDs      []string // When set, fetch exactly these ids instead of a ranked page
}

// ChartParams are the effective parameters of a chart fetch
type ChartParams struct {
	ID       string
	Currency string
	Days     int
}

// CoinsQuery are the effective parameters of the gateway's listing operation
type CoinsQuery struct {
	Page     int
	PerPage  int
	Currency string
	Query    string // Optional free-text filter
}

// CacheStatus reports whether a gateway response was served from cache
type CacheStatus string

const (
	CacheStatusHit  CacheStatus = "hit"
	CacheStatusMiss CacheStatus = "miss"
)

// SupportedCurrencies are the quote currencies accepted by the gateway
var SupportedCurrencies = []string{"usd", "eur", "gbp", "jpy"}

// IsSupportedCurrency reports whether currency may be passed upstream
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}

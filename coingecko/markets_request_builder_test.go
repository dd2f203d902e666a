package coingecko

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	return parsed.Query()
}

func TestMarketsRequestBuilder_Defaults(t *testing.T) {
	builder := NewMarketsRequestBuilder("https://api.coingecko.com/api/v3")

	rawURL := builder.BuildURL()
	assert.Contains(t, rawURL, "https://api.coingecko.com/api/v3/coins/markets?")

	query := parseQuery(t, rawURL)
	assert.Equal(t, "usd", query.Get("vs_currency"))
	assert.Equal(t, "market_cap_desc", query.Get("order"))
	assert.Equal(t, "false", query.Get("sparkline"))
}

func TestMarketsRequestBuilder_Pagination(t *testing.T) {
	builder := NewMarketsRequestBuilder("https://api.coingecko.com/api/v3").
		WithPage(3).
		WithPerPage(50)

	query := parseQuery(t, builder.BuildURL())
	assert.Equal(t, "3", query.Get("page"))
	assert.Equal(t, "50", query.Get("per_page"))
}

func TestMarketsRequestBuilder_IDs(t *testing.T) {
	builder := NewMarketsRequestBuilder("https://api.coingecko.com/api/v3").
		WithIDs([]string{"bitcoin", "ethereum"})

	query := parseQuery(t, builder.BuildURL())
	assert.Equal(t, "bitcoin,ethereum", query.Get("ids"))

	// Empty id list adds no parameter
	builder = NewMarketsRequestBuilder("https://api.coingecko.com/api/v3").WithIDs(nil)
	query = parseQuery(t, builder.BuildURL())
	assert.Empty(t, query.Get("ids"))
}

func TestMarketsRequestBuilder_CurrencyOverride(t *testing.T) {
	builder := NewMarketsRequestBuilder("https://api.coingecko.com/api/v3")
	builder.WithCurrency("eur")

	query := parseQuery(t, builder.BuildURL())
	assert.Equal(t, "eur", query.Get("vs_currency"))
}

func TestRequestBuilder_ApiKey(t *testing.T) {
	// WithApiKey is promoted from the base builder, so the chain yields
	// the base type; keep the two cases in separate variables
	withKey := NewMarketsRequestBuilder("https://api.coingecko.com/api/v3").
		WithApiKey("demo-key")

	query := parseQuery(t, withKey.BuildURL())
	assert.Equal(t, "demo-key", query.Get("x_cg_demo_api_key"))

	// No key configured means no key parameter
	withoutKey := NewMarketsRequestBuilder("https://api.coingecko.com/api/v3")
	query = parseQuery(t, withoutKey.BuildURL())
	assert.Empty(t, query.Get("x_cg_demo_api_key"))
}

func TestRequestBuilder_Headers(t *testing.T) {
	builder := NewSearchRequestBuilder("https://api.coingecko.com/api/v3").
		WithQuery("doge")

	req, err := builder.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "Mozilla/5.0 Market-Gateway", req.Header.Get("User-Agent"))
	assert.Equal(t, "doge", req.URL.Query().Get("query"))
}

func TestChartRequestBuilder_Path(t *testing.T) {
	builder := NewChartRequestBuilder("https://api.coingecko.com/api/v3", "bitcoin").
		WithDays(7)
	builder.WithCurrency("gbp")

	rawURL := builder.BuildURL()
	assert.Contains(t, rawURL, "/coins/bitcoin/market_chart?")

	query := parseQuery(t, rawURL)
	assert.Equal(t, "7", query.Get("days"))
	assert.Equal(t, "gbp", query.Get("vs_currency"))
}

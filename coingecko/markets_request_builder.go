package coingecko

import (
	"strconv"
	"strings"
)

const (
	// Complete path for markets API endpoint
	MARKETS_API_PATH = "/coins/markets"
	// Default ordering for listing pages
	ORDER_MARKET_CAP_DESC = "market_cap_desc"
)

// MarketsRequestBuilder builds requests for the coins/markets endpoint
type MarketsRequestBuilder struct {
	*RequestBuilder
}

// NewMarketsRequestBuilder creates a new request builder for the markets endpoint
func NewMarketsRequestBuilder(baseURL string) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, MARKETS_API_PATH),
	}

	// Default market parameters
	rb.WithCurrency("usd")
	rb.WithOrder(ORDER_MARKET_CAP_DESC)
	rb.WithSparkline(false)

	return rb
}

// WithPage adds page parameter for pagination
func (rb *MarketsRequestBuilder) WithPage(page int) *MarketsRequestBuilder {
	rb.With("page", strconv.Itoa(page))
	return rb
}

// WithPerPage adds per_page parameter
func (rb *MarketsRequestBuilder) WithPerPage(perPage int) *MarketsRequestBuilder {
	rb.With("per_page", strconv.Itoa(perPage))
	return rb
}

// WithOrder adds ordering parameter
func (rb *MarketsRequestBuilder) WithOrder(order string) *MarketsRequestBuilder {
	if order != "" {
		rb.With("order", order)
	}
	return rb
}

// WithIDs adds ids parameter (comma-separated list of coin IDs)
func (rb *MarketsRequestBuilder) WithIDs(ids []string) *MarketsRequestBuilder {
	if len(ids) > 0 {
		rb.With("ids", strings.Join(ids, ","))
	}
	return rb
}

// WithSparkline adds sparkline parameter
func (rb *MarketsRequestBuilder) WithSparkline(enabled bool) *MarketsRequestBuilder {
	rb.With("sparkline", strconv.FormatBool(enabled))
	return rb
}

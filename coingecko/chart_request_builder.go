package coingecko

import (
	"fmt"
	"strconv"
)

// ChartRequestBuilder builds requests for the coins/{id}/market_chart endpoint
type ChartRequestBuilder struct {
	*RequestBuilder
}

// NewChartRequestBuilder creates a new request builder for chart data of one coin
func NewChartRequestBuilder(baseURL, coinID string) *ChartRequestBuilder {
	return &ChartRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, fmt.Sprintf("/coins/%s/market_chart", coinID)),
	}
}

// WithDays adds the days parameter controlling the requested span
func (rb *ChartRequestBuilder) WithDays(days int) *ChartRequestBuilder {
	rb.With("days", strconv.Itoa(days))
	return rb
}

package coingecko

// Complete path for search API endpoint
const SEARCH_API_PATH = "/search"

// SearchRequestBuilder builds requests for the search endpoint
type SearchRequestBuilder struct {
	*RequestBuilder
}

// NewSearchRequestBuilder creates a new request builder for the search endpoint
func NewSearchRequestBuilder(baseURL string) *SearchRequestBuilder {
	return &SearchRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, SEARCH_API_PATH),
	}
}

// WithQuery adds the free-text query parameter
func (rb *SearchRequestBuilder) WithQuery(query string) *SearchRequestBuilder {
	if query != "" {
		rb.With("query", query)
	}
	return rb
}

package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for CoinGecko API requests
type RequestBuilder struct {
	baseURL   string
	apiPath   string
	params    map[string]string
	apiKey    string
	userAgent string
	headers   map[string]string
}

// NewRequestBuilder creates a new base request builder for CoinGecko endpoints
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:   baseURL,
		apiPath:   apiPath,
		params:    make(map[string]string),
		headers:   make(map[string]string),
		userAgent: "Mozilla/5.0 Market-Gateway",
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	rb.params[key] = value
	return rb
}

// WithCurrency adds vs_currency parameter
func (rb *RequestBuilder) WithCurrency(currency string) *RequestBuilder {
	if currency != "" {
		rb.params["vs_currency"] = currency
	}
	return rb
}

// WithApiKey sets the demo API key appended to the query
func (rb *RequestBuilder) WithApiKey(apiKey string) *RequestBuilder {
	rb.apiKey = apiKey
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}
	if rb.apiKey != "" {
		query.Add("x_cg_demo_api_key", rb.apiKey)
	}

	finalURL := fullPath
	if queryString := query.Encode(); queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	for name, value := range rb.headers {
		req.Header.Set(name, value)
	}

	return req, nil
}

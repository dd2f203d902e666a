package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net"
	"net/http"
	"time"
)

// StatusHandler receives the outcome of HTTP requests, typically to feed
// metrics
type StatusHandler interface {
	// OnRequest handles a request with its final status
	OnRequest(status string)
	// OnRetry handles retry events
	OnRetry()
}

// RetryOptions configures retry behavior for HTTP requests
type RetryOptions struct {
	MaxRetries        int
	BaseBackoff       time.Duration
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultRetryOptions returns default retry options
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxRetries:        3,
		BaseBackoff:       500 * time.Millisecond,
		LogPrefix:         "HTTP",
		ConnectionTimeout: 5 * time.Second,
		RequestTimeout:    10 * time.Second,
	}
}

// StatusError is returned when the upstream answers with a non-OK status.
// Adapters inspect Code to distinguish hard failures from not-found.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Code, e.Body)
}

// Client wraps an HTTP client with retry capabilities
type Client struct {
	httpClient    *http.Client
	opts          RetryOptions
	statusHandler StatusHandler
}

// New creates a new HTTP client with retry capabilities
func New(opts RetryOptions, handler StatusHandler) *Client {
	httpClient := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
		},
	}

	return &Client{
		httpClient:    httpClient,
		opts:          opts,
		statusHandler: handler,
	}
}

// Do executes an HTTP request with retry logic and returns the response body
func (c *Client) Do(req *http.Request) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("%s: Retry %d/%d after error: %v",
				c.opts.LogPrefix, attempt, c.opts.MaxRetries-1, lastErr)

			if c.statusHandler != nil {
				c.statusHandler.OnRetry()
			}

			backoff := backoffWithJitter(c.opts.BaseBackoff, attempt)
			select {
			case <-time.After(backoff):
			case <-req.Context().Done():
				return nil, req.Context().Err()
			}
		}

		requestStart := time.Now()
		resp, err := c.httpClient.Do(req)
		requestDuration := time.Since(requestStart)

		if err != nil {
			lastErr = fmt.Errorf("request failed after %.2fs: %w", requestDuration.Seconds(), err)
			if c.statusHandler != nil {
				c.statusHandler.OnRequest("error")
			}
			if req.Context().Err() != nil {
				return nil, lastErr
			}
			continue
		}

		body, err := readResponse(resp, requestDuration)
		resp.Body.Close()
		if err != nil {
			if isRetryableStatus(resp.StatusCode) {
				lastErr = err
				if c.statusHandler != nil {
					c.statusHandler.OnRequest("rate_limited")
				}
				continue
			}

			// Non-retryable statuses fail immediately
			if c.statusHandler != nil {
				c.statusHandler.OnRequest("error")
			}
			return nil, err
		}

		if c.statusHandler != nil {
			c.statusHandler.OnRequest("success")
		}
		return body, nil
	}

	return nil, fmt.Errorf("all %d attempts failed, last error: %w", c.opts.MaxRetries, lastErr)
}

// readResponse reads the HTTP response body, converting non-OK statuses
// into StatusError
func readResponse(resp *http.Response, requestDuration time.Duration) ([]byte, error) {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := resp.Header.Get("Retry-After")
			return nil, fmt.Errorf("rate limit exceeded, retry after %s: %w",
				retryAfter, &StatusError{Code: resp.StatusCode, Body: string(body)})
		}

		return nil, fmt.Errorf("request failed after %.2fs: %w",
			requestDuration.Seconds(), &StatusError{Code: resp.StatusCode, Body: string(body)})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return body, nil
}

// backoffWithJitter calculates backoff duration with jitter for retries
func backoffWithJitter(baseBackoff time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return baseBackoff
	}

	multiplier := uint(1) << uint(attempt-1)
	backoff := time.Duration(float64(baseBackoff) * float64(multiplier))
	jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
	return backoff + jitter
}

// isRetryableStatus determines if a given HTTP status code should trigger a retry
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway ||
		statusCode == http.StatusServiceUnavailable ||
		statusCode == http.StatusGatewayTimeout
}

// StatusCode extracts the upstream status code from err, if any
func StatusCode(err error) (int, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code, true
	}
	return 0, false
}

// IsTimeout reports whether err was caused by a timeout, either the
// per-call request timeout or a context deadline
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

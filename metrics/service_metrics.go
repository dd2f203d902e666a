package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_gateway_"

// Service constants
const (
	ServiceCoins     = "coins"
	ServiceChart     = "chart"
	ServiceSearch    = "search"
	ServiceWatchlist = "watchlist"
	ServiceCoincap   = "coincap"
)

var (
	// Upstream request counter per service
	// Cardinality: ~15 (5 services x 3 statuses)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to upstream providers per service",
		},
		[]string{"service", "status"},
	)

	// Retry attempts counter
	// Cardinality: ~5 (number of services)
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Cache lookup counter per gateway operation
	// Cardinality: ~10 (5 operations x hit/miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Cache lookups per gateway operation and result",
		},
		[]string{"operation", "result"},
	)

	// Fallback activation counter
	// Cardinality: ~5 (number of operations with a fallback path)
	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "fallbacks_total",
			Help: "Number of times the secondary provider served a request",
		},
		[]string{"operation"},
	)

	// Upstream fetch latency per service
	// Cardinality: ~5 (number of services)
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to fetch data from upstream providers",
		},
		[]string{"service"},
	)

	// Rate-limit wait time before upstream calls
	// Cardinality: ~5 (number of services)
	ThrottleWaitHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "throttle_wait_seconds",
			Help: "Time spent waiting on the inter-request delay",
		},
		[]string{"service"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new metrics writer for a specific service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{serviceName: serviceName}
}

// OnRequest records an upstream request with its final status.
// Implements httpclient.StatusHandler.
func (mw *MetricsWriter) OnRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// OnRetry records a retry attempt.
// Implements httpclient.StatusHandler.
func (mw *MetricsWriter) OnRetry() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
}

// RecordCacheHit records a cache hit for the given gateway operation
func RecordCacheHit(operation string) {
	CacheLookupsTotal.WithLabelValues(operation, "hit").Inc()
}

// RecordCacheMiss records a cache miss for the given gateway operation
func RecordCacheMiss(operation string) {
	CacheLookupsTotal.WithLabelValues(operation, "miss").Inc()
}

// RecordFallback records that the secondary provider served an operation
func RecordFallback(operation string) {
	FallbacksTotal.WithLabelValues(operation).Inc()
}

// RecordFetchDuration records the duration of an upstream fetch for the
// given gateway operation
func RecordFetchDuration(operation string, start time.Time) {
	FetchDurationHistogram.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordThrottleWait records time spent in the inter-request delay before
// an upstream call
func RecordThrottleWait(operation string, waited time.Duration) {
	ThrottleWaitHistogram.WithLabelValues(operation).Observe(waited.Seconds())
}

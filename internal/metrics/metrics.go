// Package metrics provides Prometheus metrics collection for the portfolio service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ContentOperationsTotal counts content reads and writes by entity kind.
	ContentOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_operations_total",
			Help: "Total number of content operations",
		},
		[]string{"kind", "operation", "status"},
	)

	// TokensIssuedTotal counts token requests by result.
	TokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tokens_issued_total",
			Help: "Total number of admin token requests",
		},
		[]string{"result"},
	)

	// LocalizationDuration tracks how long building a localized page takes.
	LocalizationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "localization_render_duration_seconds",
			Help:    "Localized page build duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"language"},
	)

	// RateLimitedTotal counts requests rejected by a rate limiter scope.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limited_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"scope"},
	)

	// AuditEntriesTotal counts audit entries by outcome of the async writer.
	AuditEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_entries_total",
			Help: "Total number of audit entries handled by the async writer",
		},
		[]string{"status"},
	)

	// CircuitBreakerState is 0 closed, 1 open and 2 half-open per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CircuitBreakerTransitionsTotal counts breaker transitions by target state.
	CircuitBreakerTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "to"},
	)

	// CacheOperationsTotal tracks cache operations by cache, operation and result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)
)

// Operation status labels.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusInvalid  = "invalid"
	StatusError    = "error"
	StatusDropped  = "dropped"
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordContentOperation records one content operation.
func RecordContentOperation(kind, operation, status string) {
	ContentOperationsTotal.WithLabelValues(kind, operation, status).Inc()
}

// RecordTokenIssued records the result of a token request.
func RecordTokenIssued(result string) {
	TokensIssuedTotal.WithLabelValues(result).Inc()
}

// RecordLocalization records the time spent building a localized page.
func RecordLocalization(language string, duration time.Duration) {
	LocalizationDuration.WithLabelValues(language).Observe(duration.Seconds())
}

// RecordCacheOperation records a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// RecordCircuitTransition records a breaker moving to state, given as its
// numeric value and its label.
func RecordCircuitTransition(name string, state int, label string) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitionsTotal.WithLabelValues(name, label).Inc()
}

// RecordAuditEntries records n audit entries with the given outcome.
func RecordAuditEntries(status string, n int) {
	AuditEntriesTotal.WithLabelValues(status).Add(float64(n))
}

// RecordRateLimited records one rejected request of scope.
func RecordRateLimited(scope string) {
	RateLimitedTotal.WithLabelValues(scope).Inc()
}

// Package metrics provides Prometheus collectors for the box service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "box_service"

// Recommendation outcomes.
const (
	OutcomeSuccess           = "success"
	OutcomeValidationError   = "validation_error"
	OutcomeCatalogError      = "catalog_error"
	OutcomeNoCompatibleModel = "no_compatible_model"
	OutcomePartialCoverage   = "partial_coverage"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, route and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RecommendationsTotal counts recommendation runs by mode and outcome.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommendation computations",
		},
		[]string{"mode", "outcome"},
	)

	// RecommendationDuration tracks end-to-end recommendation latency including catalog fetch.
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Recommendation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"mode"},
	)

	// UnmetUnits observes units a mixed plan could not cover.
	UnmetUnits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mixed_unmet_units",
			Help:      "Units left without coverage per mixed plan",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500},
		},
	)

	// BoxesPlanned observes the box count of the chosen plan.
	BoxesPlanned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "boxes_planned",
			Help:      "Boxes in the best single-model recommendation or the mixed plan",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100},
		},
		[]string{"mode"},
	)

	// CatalogFetchDuration tracks catalog gateway calls by backend, operation and result.
	CatalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_fetch_duration_seconds",
			Help:      "Catalog gateway call duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"backend", "operation", "result"},
	)

	// CircuitBreakerState reports 0 closed, 1 open, 2 half-open per breaker.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks snapshot cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_operations_total",
			Help:      "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_size",
			Help:      "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_capacity",
			Help:      "Cache capacity",
		},
	)

	// AuditLogsDropped counts log entries dropped because the async queue was full.
	AuditLogsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_logs_dropped_total",
			Help:      "Log entries dropped because the async writer queue was full",
		},
	)

	// HandlerPanics counts panics recovered per route.
	HandlerPanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_panics_total",
			Help:      "Handler panics recovered by the HTTP layer",
		},
		[]string{"path"},
	)
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

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRecommendation records the duration and outcome of a recommendation run.
func RecordRecommendation(mode string, duration time.Duration, outcome string) {
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
}

// RecordBoxesPlanned records the box count of a plan.
func RecordBoxesPlanned(mode string, boxes int) {
	BoxesPlanned.WithLabelValues(mode).Observe(float64(boxes))
}

// RecordUnmetUnits records how many units a mixed plan left uncovered.
func RecordUnmetUnits(units int) {
	UnmetUnits.Observe(float64(units))
}

// RecordCatalogFetch records one catalog gateway call.
func RecordCatalogFetch(backend, operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	CatalogFetchDuration.WithLabelValues(backend, operation, result).Observe(duration.Seconds())
}

// SetCircuitBreakerState publishes a breaker state as its numeric code.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// RecordAuditLogDropped counts one dropped async log entry.
func RecordAuditLogDropped() {
	AuditLogsDropped.Inc()
}

// RecordPanic counts one recovered panic on route.
func RecordPanic(route string) {
	HandlerPanics.WithLabelValues(route).Inc()
}

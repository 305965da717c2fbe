package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration buckets range from fast (5ms) to slow (10s) responses.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"method", "path"},
	)
)

// Business metrics track reference-data operations
var (
	ArticleNamesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_names_created_total",
			Help: "Total number of article names created from the admin form",
		},
	)

	// ArticleNameCreateFailuresTotal counts create attempts by failure reason
	ArticleNameCreateFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_name_create_failures_total",
			Help: "Total number of rejected or failed article name creations",
		},
		[]string{"reason"}, // reason: validation, store
	)

	// SeedRunsTotal counts seed invocations by result
	SeedRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_runs_total",
			Help: "Total number of sample-data seed runs",
		},
		[]string{"result"}, // result: success, failure, in_progress
	)

	SeedArticlesInsertedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seed_articles_inserted_total",
			Help: "Total number of sample article names inserted by seed runs",
		},
	)

	// ReferenceDataMutationsTotal counts management-section writes
	ReferenceDataMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reference_data_mutations_total",
			Help: "Total number of reference data writes from the management sections",
		},
		[]string{"resource", "operation"},
	)
)

// Database metrics
var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)

// Resilience metrics
var (
	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

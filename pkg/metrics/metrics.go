package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rackmap_api_requests_total",
			Help: "Total number of API requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rackmap_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// Locator metrics
	SearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rackmap_searches_total",
			Help: "Total number of item searches executed",
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rackmap_search_results",
			Help:    "Number of results returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	RacksTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rackmap_racks_total",
			Help: "Number of rack markers in the dataset after the last upsert",
		},
	)

	RackUpsertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rackmap_rack_upserts_total",
			Help: "Total number of rack upserts by outcome (created, updated)",
		},
		[]string{"outcome"},
	)

	// Storage metrics
	StorageErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rackmap_storage_errors_total",
			Help: "Total number of storage failures by operation (load, save)",
		},
		[]string{"op"},
	)

	// Rate limiting metrics
	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rackmap_rate_limited_total",
			Help: "Total number of admin requests rejected by rate limiting",
		},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal,
		APIRequestDuration,
		SearchesTotal,
		SearchResults,
		RacksTotal,
		RackUpsertsTotal,
		StorageErrorsTotal,
		RateLimitedTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

/*
Package metrics provides Prometheus instrumentation for Rackmap.

All collectors are package-level variables registered once at init time and
exposed through the standard Prometheus HTTP handler at /metrics.

# Metrics

API:

  - rackmap_api_requests_total{route,method,status}: request counter
  - rackmap_api_request_duration_seconds{route}: latency histogram

Locator:

  - rackmap_searches_total: searches executed
  - rackmap_search_results: results-per-search histogram
  - rackmap_racks_total: rack markers in the dataset after the last upsert
  - rackmap_rack_upserts_total{outcome}: upserts by created/updated

Storage:

  - rackmap_storage_errors_total{op}: load/save failures

Rate limiting:

  - rackmap_rate_limited_total: admin requests rejected with 429

# Usage

Recording from other packages:

	metrics.SearchesTotal.Inc()
	metrics.APIRequestsTotal.WithLabelValues("/api/search", "GET", "200").Inc()

Exposing the endpoint:

	mux.Handle("/metrics", metrics.Handler())

# See Also

  - pkg/api for the HTTP wiring
  - Prometheus client: https://github.com/prometheus/client_golang
*/
package metrics

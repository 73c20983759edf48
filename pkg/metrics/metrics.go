// Package metrics holds the Prometheus collectors shared across the module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds for
// latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// UpstreamRequests counts football-data.org requests by endpoint and status code.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "football",
		Name:      "upstream_requests_total",
		Help:      "Requests sent to football-data.org by endpoint and status code.",
	}, []string{"endpoint", "code"})

	// UpstreamDuration observes football-data.org request latency by endpoint.
	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "football",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of football-data.org requests.",
		Buckets:   DefaultBuckets,
	}, []string{"endpoint"})

	// CacheLookups counts response cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "football",
		Name:      "cache_lookups_total",
		Help:      "Response cache lookups by result.",
	}, []string{"result"})

	// SnapshotsStored counts snapshots persisted by the sync worker by kind.
	SnapshotsStored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "football",
		Name:      "snapshots_stored_total",
		Help:      "Competition snapshots persisted by kind.",
	}, []string{"kind"})
)

// Package metrics records Prometheus metrics for the store, object storage
// and domain operations. It is kept apart from middleware so that the
// database and storage packages can record without import cycles.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ilyde_datasets"

// SlowQueryThreshold is the duration above which a store query is counted as slow
const SlowQueryThreshold = 100 * time.Millisecond

var (
	storeQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_query_duration_seconds",
			Help:      "Document store query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"store", "operation"},
	)

	storeQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_queries_total",
			Help:      "Total number of document store queries",
		},
		[]string{"store", "operation"},
	)

	storeQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_query_errors_total",
			Help:      "Total number of failed document store queries",
		},
		[]string{"store", "operation"},
	)

	storeSlowQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_slow_queries_total",
			Help:      "Total number of slow document store queries (>100ms)",
		},
		[]string{"store", "operation"},
	)
)

// RecordStoreQuery records a document store query
func RecordStoreQuery(store, operation string, duration time.Duration) {
	storeQueryTotal.WithLabelValues(store, operation).Inc()
	storeQueryDuration.WithLabelValues(store, operation).Observe(duration.Seconds())

	if duration > SlowQueryThreshold {
		storeSlowQueries.WithLabelValues(store, operation).Inc()
	}
}

// RecordStoreError records a failed document store query
func RecordStoreError(store, operation string) {
	storeQueryErrors.WithLabelValues(store, operation).Inc()
}

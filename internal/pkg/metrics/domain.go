package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datasetsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasets_created_total",
		Help:      "Total number of datasets created",
	})

	datasetsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "datasets_deleted_total",
		Help:      "Total number of datasets soft-deleted",
	})

	versionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "versions_created_total",
		Help:      "Total number of versions created",
	})

	versionSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "version_size_bytes",
		Help:      "Total object size captured by a version",
		Buckets:   prometheus.ExponentialBuckets(1024, 8, 10),
	})

	versionCommitGaps = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "version_commit_partial_failures_total",
		Help:      "Versions persisted whose dataset label update failed",
	})
)

// RecordDatasetCreated counts a created dataset
func RecordDatasetCreated() {
	datasetsCreated.Inc()
}

// RecordDatasetDeleted counts a soft-deleted dataset
func RecordDatasetDeleted() {
	datasetsDeleted.Inc()
}

// RecordVersionCreated counts a created version and observes its size
func RecordVersionCreated(size int64) {
	versionsCreated.Inc()
	versionSize.Observe(float64(size))
}

// RecordVersionCommitGap counts a version saved without its dataset label update
func RecordVersionCommitGap() {
	versionCommitGaps.Inc()
}

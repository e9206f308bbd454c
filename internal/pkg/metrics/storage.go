package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storageOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "Object storage operation duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"driver", "operation", "status"},
	)

	storageBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "storage_circuit_state",
			Help:      "Object storage circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"breaker"},
	)
)

// RecordStorageOp records an object storage call
func RecordStorageOp(driver, operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storageOpDuration.WithLabelValues(driver, operation, status).Observe(duration.Seconds())
}

// SetBreakerState publishes the state of a circuit breaker
func SetBreakerState(name string, state int) {
	storageBreakerState.WithLabelValues(name).Set(float64(state))
}

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRecordStoreQuery(t *testing.T) {
	slow := storeSlowQueries.WithLabelValues("postgres", "select")
	total := storeQueryTotal.WithLabelValues("postgres", "select")
	slowBefore, totalBefore := counterValue(t, slow), counterValue(t, total)

	RecordStoreQuery("postgres", "select", 5*time.Millisecond)
	RecordStoreQuery("postgres", "select", 250*time.Millisecond)

	assert.Equal(t, totalBefore+2, counterValue(t, total))
	assert.Equal(t, slowBefore+1, counterValue(t, slow))
}

func TestRecordVersionCommitGap(t *testing.T) {
	before := counterValue(t, versionCommitGaps)

	RecordVersionCommitGap()

	assert.Equal(t, before+1, counterValue(t, versionCommitGaps))
}

func TestRecordStorageOp(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordStorageOp("memory", "list_objects", time.Millisecond, nil)
		RecordStorageOp("memory", "list_objects", time.Millisecond, errors.New("boom"))
		SetBreakerState("storage-memory", 1)
	})
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementSelection("found")
	m.IncrementSelection("found")
	m.IncrementSelection("default")
	m.ObserveSelection(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Selections.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Selections.WithLabelValues("default")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SelectionLatency))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementSelection("found")
		m.ObserveSelection(time.Now())
	})
}

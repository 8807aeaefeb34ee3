package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for country selections.
type Metrics struct {
	// Selections by outcome: none, found, default
	Selections *prometheus.CounterVec

	SelectionLatency prometheus.Histogram
}

// New registers the selection metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Selections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skinatlas_selections_total",
			Help: "Country selections by lookup outcome",
		}, []string{"outcome"}),

		SelectionLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "skinatlas_selection_duration_seconds",
			Help:    "Duration of selection requests including encoding",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementSelection records one resolved click.
func (m *Metrics) IncrementSelection(outcome string) {
	if m != nil {
		m.Selections.WithLabelValues(outcome).Inc()
	}
}

// ObserveSelection records the duration of a selection request.
// Call with the time the request started.
func (m *Metrics) ObserveSelection(start time.Time) {
	if m != nil {
		m.SelectionLatency.Observe(time.Since(start).Seconds())
	}
}

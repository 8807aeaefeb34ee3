package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process-wide Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	FactsLoaded  prometheus.Gauge
}

// New creates a registry with Go runtime collectors and registers the
// process metrics on it. Module metrics register on Registry().
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skinatlas_http_requests_total",
			Help: "HTTP requests by route pattern and status code",
		}, []string{"route", "status"}),
		FactsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name: "skinatlas_facts_loaded",
			Help: "Number of distinct countries in the fact table",
		}),
	}
}

// Registry exposes the registry for module metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IncrementRequest records one served request.
func (m *Metrics) IncrementRequest(route, status string) {
	m.HTTPRequests.WithLabelValues(route, status).Inc()
}

// SetFactsLoaded records the size of the fact table.
func (m *Metrics) SetFactsLoaded(n int) {
	m.FactsLoaded.Set(float64(n))
}

package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics keeps the adapter's instruments on a private registry so
// embedding applications and parallel tests never collide on the
// global one.
type metrics struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "archviz_diagrams_generated_total",
				Help: "Total number of diagrams generated",
			},
			[]string{"format"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "archviz_generation_failures_total",
				Help: "Total number of requests that produced no diagram",
			},
			[]string{"stage"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "archviz_generation_duration_seconds",
				Help: "Duration of diagram generation requests",
			},
		),
	}
	m.registry.MustRegister(m.generated, m.failures, m.duration)
	return m
}

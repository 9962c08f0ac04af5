package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed at /metrics.  A
// dedicated registry keeps the exposition limited to what this service
// registers.
type Metrics struct {
	registry *prometheus.Registry

	// Messages counts handled message events by outcome ("ok"/"degraded").
	Messages *prometheus.CounterVec
}

// NewMetrics builds and registers the instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	messages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pravobot_messages_total",
		Help: "Message events handled, by reply outcome.",
	}, []string{"outcome"})
	registry.MustRegister(messages)
	return &Metrics{registry: registry, Messages: messages}
}

// Handler serves the Prometheus exposition for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector exposes turn-processing metrics to Prometheus.
type MetricsCollector struct {
	registry *prometheus.Registry

	turnDuration   *prometheus.HistogramVec
	turnsTotal     *prometheus.CounterVec
	upstreamErrors *prometheus.CounterVec
	ordersSaved    prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewMetricsCollector creates a new metrics collector with its own registry.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	turnDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "turn_duration_seconds",
			Help:    "Time taken to process one conversation turn",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	turnsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turns_total",
			Help: "Processed conversation turns by outcome",
		},
		[]string{"outcome"}, // ongoing, complete, error
	)

	upstreamErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Failed language model calls",
		},
		[]string{"provider"},
	)

	ordersSaved := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_saved_total",
			Help: "Completed orders persisted to the store",
		},
	)

	activeSessions := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Live conversation sessions",
		},
	)

	registry.MustRegister(turnDuration, turnsTotal, upstreamErrors, ordersSaved, activeSessions)

	return &MetricsCollector{
		registry:       registry,
		turnDuration:   turnDuration,
		turnsTotal:     turnsTotal,
		upstreamErrors: upstreamErrors,
		ordersSaved:    ordersSaved,
		activeSessions: activeSessions,
	}
}

// Registry returns the collector's Prometheus registry for the promhttp
// handler.
func (c *MetricsCollector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveTurn records a successfully processed turn.
func (c *MetricsCollector) ObserveTurn(provider string, complete bool, duration time.Duration) {
	c.turnDuration.WithLabelValues(provider).Observe(duration.Seconds())
	outcome := "ongoing"
	if complete {
		outcome = "complete"
	}
	c.turnsTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpstreamError records a failed language model call.
func (c *MetricsCollector) ObserveUpstreamError(provider string) {
	c.upstreamErrors.WithLabelValues(provider).Inc()
	c.turnsTotal.WithLabelValues("error").Inc()
}

// ObserveOrderSaved records one persisted order.
func (c *MetricsCollector) ObserveOrderSaved() {
	c.ordersSaved.Inc()
}

// SetActiveSessions updates the live session gauge.
func (c *MetricsCollector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

package monitoring

import (
	"sync"
	"time"
)

// Monitor collects lightweight operational metrics for the JSON metrics
// endpoint. Prometheus collectors live in metrics.go; this map-backed view is
// what the API and CLI read.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance.
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value.
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// IncrementMetric adds one to an integer counter metric.
func (m *Monitor) IncrementMetric(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	count, _ := m.metrics[name].(int)
	m.metrics[name] = count + 1
}

// GetMetric returns a specific metric value.
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics.
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()
	return metrics
}

// Reset clears all metrics.
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordTurn records the outcome of one processed conversation turn.
func (m *Monitor) RecordTurn(complete bool, duration time.Duration) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	count, _ := m.metrics["turns_processed"].(int)
	m.metrics["turns_processed"] = count + 1
	if complete {
		completed, _ := m.metrics["orders_completed"].(int)
		m.metrics["orders_completed"] = completed + 1
	}
	m.metrics["last_turn_ms"] = duration.Milliseconds()
	m.metrics["last_turn_at"] = time.Now().Format(time.RFC3339)
}

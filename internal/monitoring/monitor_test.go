package monitoring

import (
	"testing"
	"time"
)

func TestMonitor_GetMetrics(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	metrics := m.GetMetrics()

	value, exists := metrics["test_metric"]
	if !exists {
		t.Fatalf("Expected 'test_metric' to be present in metrics, but it was not")
	}
	if value != 42 {
		t.Errorf("Expected 'test_metric' to be 42, but got %v", value)
	}

	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

func TestMonitor_RecordTurn(t *testing.T) {
	m := NewMonitor()

	m.RecordTurn(false, 120*time.Millisecond)
	m.RecordTurn(true, 90*time.Millisecond)

	metrics := m.GetMetrics()

	if metrics["turns_processed"] != 2 {
		t.Errorf("Expected 'turns_processed' to be 2, but got %v", metrics["turns_processed"])
	}
	if metrics["orders_completed"] != 1 {
		t.Errorf("Expected 'orders_completed' to be 1, but got %v", metrics["orders_completed"])
	}
	if _, exists := metrics["last_turn_at"]; !exists {
		t.Errorf("Expected 'last_turn_at' to be present in metrics, but it was not")
	}
}

func TestMonitor_IncrementMetric(t *testing.T) {
	m := NewMonitor()

	m.IncrementMetric("saves")
	m.IncrementMetric("saves")

	value, _ := m.GetMetric("saves")
	if value != 2 {
		t.Errorf("Expected 'saves' to be 2, but got %v", value)
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor()
	m.RecordMetric("test_metric", 42)

	m.Reset()

	metrics := m.GetMetrics()

	_, exists := metrics["test_metric"]
	if exists {
		t.Errorf("Expected 'test_metric' to be removed after Reset(), but it was present")
	}

	// Uptime is added on each GetMetrics call
	_, exists = metrics["uptime_seconds"]
	if !exists {
		t.Errorf("Expected 'uptime_seconds' to be present in metrics, but it was not")
	}
}

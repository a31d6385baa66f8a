package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	// Replace global default registry to allow test inspection.
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry

	m := New()

	if m.TransactionsRecorded == nil || m.DebtsPaid == nil || m.RateLookups == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.RecordTransaction("expense")
	m.RecordDebtPaid()
	m.RecordContribution(150)
	m.RecordReport("spending")
	m.RecordRateLookup("hit")

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	m.RecordTransaction("income")
	m.RecordTransactionDeleted()
	m.RecordDebtCreated()
	m.RecordDebtPaid()
	m.RecordGoalCreated()
	m.RecordContribution(10)
	m.RecordReport("income")
	m.RecordRateLookup("miss")
}

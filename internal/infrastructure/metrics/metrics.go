package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus metrics. A nil *Metrics is valid
// and records nothing, so tests can wire handlers without a registry.
type Metrics struct {
	TransactionsRecorded *prometheus.CounterVec
	TransactionsDeleted  prometheus.Counter
	DebtsCreated         prometheus.Counter
	DebtsPaid            prometheus.Counter
	GoalsCreated         prometheus.Counter
	GoalContributions    prometheus.Counter
	ContributionAmount   prometheus.Histogram
	ReportsGenerated     *prometheus.CounterVec
	RateLookups          *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"kind"},
		),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		DebtsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_debts_created_total",
			Help: "Total number of debts logged",
		}),
		DebtsPaid: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_debts_paid_total",
			Help: "Total number of debts marked paid",
		}),
		GoalsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_goals_created_total",
			Help: "Total number of savings goals created",
		}),
		GoalContributions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_goal_contributions_total",
			Help: "Total number of goal contributions",
		}),
		ContributionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fintrack_goal_contribution_amount",
			Help:    "Goal contribution amounts",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000},
		}),
		ReportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_reports_generated_total",
				Help: "Total number of reports generated",
			},
			[]string{"kind"},
		),
		RateLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_rate_lookups_total",
				Help: "Total number of exchange rate lookups",
			},
			[]string{"status"},
		),
	}
}

// RecordTransaction counts a recorded transaction by kind.
func (m *Metrics) RecordTransaction(kind string) {
	if m == nil {
		return
	}
	m.TransactionsRecorded.WithLabelValues(kind).Inc()
}

// RecordTransactionDeleted counts a deleted transaction.
func (m *Metrics) RecordTransactionDeleted() {
	if m == nil {
		return
	}
	m.TransactionsDeleted.Inc()
}

// RecordDebtCreated counts a logged debt.
func (m *Metrics) RecordDebtCreated() {
	if m == nil {
		return
	}
	m.DebtsCreated.Inc()
}

// RecordDebtPaid counts a settled debt.
func (m *Metrics) RecordDebtPaid() {
	if m == nil {
		return
	}
	m.DebtsPaid.Inc()
}

// RecordGoalCreated counts a created savings goal.
func (m *Metrics) RecordGoalCreated() {
	if m == nil {
		return
	}
	m.GoalsCreated.Inc()
}

// RecordContribution counts a goal contribution and observes its amount.
func (m *Metrics) RecordContribution(amount float64) {
	if m == nil {
		return
	}
	m.GoalContributions.Inc()
	m.ContributionAmount.Observe(amount)
}

// RecordReport counts a generated report by kind.
func (m *Metrics) RecordReport(kind string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(kind).Inc()
}

// RecordRateLookup counts an exchange rate lookup by outcome.
func (m *Metrics) RecordRateLookup(status string) {
	if m == nil {
		return
	}
	m.RateLookups.WithLabelValues(status).Inc()
}

package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricMovementApplied       = "movement.applied"
	MetricMovementRejected      = "movement.rejected"
	MetricMovementConflictRetry = "movement.conflict_retry"
	MetricMovementDuration      = "movement.apply"
	MetricCircuitBreakerState   = "circuit_breaker.state"
	MetricCustomerCreated       = "customer.created"
	MetricAccountOpened         = "account.opened"
)

type PrometheusMetrics struct {
	movementsTotal      *prometheus.CounterVec
	movementDuration    prometheus.Histogram
	conflictRetries     *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
	customersCreated    prometheus.Counter
	accountsOpened      prometheus.Counter
}

// NewPrometheusMetrics registers the ledger collectors with reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		movementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_movements_total",
				Help: "Total number of movement requests by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		movementDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_movement_duration_milliseconds",
				Help:    "Movement processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		conflictRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_conflict_retries_total",
				Help: "Total number of movement retries after a version conflict",
			},
			[]string{"operation"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		customersCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_customers_created_total",
				Help: "Total number of customers created",
			},
		),
		accountsOpened: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_accounts_opened_total",
				Help: "Total number of accounts opened",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricMovementApplied:
		m.movementsTotal.WithLabelValues(operation, "success").Inc()
	case MetricMovementRejected:
		m.movementsTotal.WithLabelValues(operation, "failed_"+tags["reason"]).Inc()
	case MetricMovementConflictRetry:
		m.conflictRetries.WithLabelValues(operation).Inc()
	case MetricCustomerCreated:
		m.customersCreated.Inc()
	case MetricAccountOpened:
		m.accountsOpened.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == MetricMovementDuration {
		m.movementDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == MetricCircuitBreakerState {
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricInstancesMaterialized = "instances.materialized"
	MetricInstancesSkipped      = "instances.skipped"
	MetricMaterialization       = "materialization"
	MetricDefinitionReconciled  = "definition.reconciled"
	MetricCascade               = "cascade"
	MetricInstanceProcessed     = "instance.processed"
	MetricBudgetStatus          = "budget.status"
	MetricActiveDefinitions     = "definitions.active"
	MetricAPIError              = "api.error"
)

type PrometheusMetrics struct {
	instancesMaterialized *prometheus.CounterVec
	instancesSkipped      *prometheus.CounterVec
	materializeDuration   prometheus.Histogram
	reconciliations       *prometheus.CounterVec
	cascades              *prometheus.CounterVec
	instancesProcessed    *prometheus.CounterVec
	budgetStatusDuration  prometheus.Histogram
	budgetStatusTotal     prometheus.Counter
	activeDefinitions     prometheus.Gauge
	apiErrors             *prometheus.CounterVec
}

// NewPrometheusMetrics registers the engine metrics with reg. A nil reg uses
// the default registry served on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		instancesMaterialized: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "instances_materialized_total",
				Help: "Total number of transaction instances created by schedule expansion",
			},
			[]string{"kind"},
		),
		instancesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "instances_skipped_total",
				Help: "Total number of occurrences skipped because an instance already existed",
			},
			[]string{"kind"},
		),
		materializeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "materialization_duration_milliseconds",
				Help:    "Time spent expanding and persisting one schedule",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reconciliations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "definitions_reconciled_total",
				Help: "Total number of definition reconciliations by trigger",
			},
			[]string{"trigger"},
		),
		cascades: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cascades_total",
				Help: "Total number of parent plus instances archive or restore cascades",
			},
			[]string{"operation", "kind"},
		),
		instancesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "instances_processed_total",
				Help: "Total number of instances marked processed",
			},
			[]string{"kind"},
		),
		budgetStatusDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_status_duration_seconds",
				Help:    "Budget status computation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		budgetStatusTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_status_computations_total",
				Help: "Total number of budget status computations",
			},
		),
		activeDefinitions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "recurring_definitions_active",
				Help: "Active recurring definitions seen by the last listing",
			},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses by code",
			},
			[]string{"code", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	kind := tags["kind"]

	switch name {
	case MetricInstancesMaterialized:
		m.instancesMaterialized.WithLabelValues(kind).Inc()
	case MetricInstancesSkipped:
		m.instancesSkipped.WithLabelValues(kind).Inc()
	case MetricDefinitionReconciled:
		m.reconciliations.WithLabelValues(tags["trigger"]).Inc()
	case MetricCascade:
		if operation := tags["operation"]; operation != "" {
			m.cascades.WithLabelValues(operation, kind).Inc()
		}
	case MetricInstanceProcessed:
		m.instancesProcessed.WithLabelValues(kind).Inc()
	case MetricBudgetStatus:
		m.budgetStatusTotal.Inc()
	case MetricAPIError:
		m.apiErrors.WithLabelValues(tags["code"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricMaterialization:
		m.materializeDuration.Observe(float64(duration.Milliseconds()))
	case MetricBudgetStatus:
		m.budgetStatusDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricActiveDefinitions:
		m.activeDefinitions.Set(value)
	}
}

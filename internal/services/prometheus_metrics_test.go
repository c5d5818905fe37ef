package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_RecordsEngineEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricInstancesMaterialized, map[string]string{"kind": "recurring_instance"})
	metrics.IncrementCounter(MetricInstancesMaterialized, map[string]string{"kind": "recurring_instance"})
	metrics.IncrementCounter(MetricInstancesSkipped, map[string]string{"kind": "installment_instance"})
	metrics.IncrementCounter(MetricDefinitionReconciled, map[string]string{"trigger": "delete"})
	metrics.IncrementCounter(MetricCascade, map[string]string{"operation": "archive", "kind": "recurring_instance"})
	metrics.IncrementCounter(MetricCascade, map[string]string{"kind": "recurring_instance"})
	metrics.IncrementCounter(MetricAPIError, map[string]string{"code": "RESOURCE_001", "status": "404"})
	metrics.IncrementCounter(MetricBudgetStatus, nil)
	metrics.IncrementCounter("unknown.metric", nil)
	metrics.RecordProcessingTime(MetricMaterialization, 12*time.Millisecond)
	metrics.RecordGauge(MetricActiveDefinitions, 4, nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.instancesMaterialized.WithLabelValues("recurring_instance")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.instancesSkipped.WithLabelValues("installment_instance")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.reconciliations.WithLabelValues("delete")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cascades.WithLabelValues("archive", "recurring_instance")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.apiErrors.WithLabelValues("RESOURCE_001", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.budgetStatusTotal))
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.activeDefinitions))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["materialization_duration_milliseconds"])
	assert.True(t, names["instances_materialized_total"])
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

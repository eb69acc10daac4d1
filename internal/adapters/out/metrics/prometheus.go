// Package metrics exposes the business counters through Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aidtracker"

// PrometheusMetrics implements ports.Metrics. A nil *PrometheusMetrics
// discards every observation.
type PrometheusMetrics struct {
	EligibilityChecks   *prometheus.CounterVec
	DeliveryTransitions *prometheus.CounterVec
	JobRuns             *prometheus.CounterVec
	JobProcessedRecords *prometheus.CounterVec
	JobLastSuccess      *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		EligibilityChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eligibility_checks_total",
			Help:      "Eligibility decisions by reason code and outcome",
		}, []string{"code", "eligible"}),

		DeliveryTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_transitions_total",
			Help:      "Delivery log records moved into each status",
		}, []string{"status"}),

		JobRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs by job and result",
		}, []string{"job", "result"}), // result: "ok", "error"

		JobProcessedRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_processed_records_total",
			Help:      "Records changed by scheduled jobs",
		}, []string{"job"}),

		JobLastSuccess: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "job_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run of each job",
		}, []string{"job"}),
	}
}

func (m *PrometheusMetrics) EligibilityChecked(code string, eligible bool) {
	if m != nil {
		m.EligibilityChecks.WithLabelValues(code, strconv.FormatBool(eligible)).Inc()
	}
}

func (m *PrometheusMetrics) DeliveryTransitioned(status string) {
	if m != nil {
		m.DeliveryTransitions.WithLabelValues(status).Inc()
	}
}

func (m *PrometheusMetrics) JobFinished(job string, processed int, err error) {
	if m == nil {
		return
	}

	if err != nil {
		m.JobRuns.WithLabelValues(job, "error").Inc()
		return
	}

	m.JobRuns.WithLabelValues(job, "ok").Inc()
	m.JobProcessedRecords.WithLabelValues(job).Add(float64(processed))
	m.JobLastSuccess.WithLabelValues(job).SetToCurrentTime()
}

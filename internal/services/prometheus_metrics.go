package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records query and cache metrics on the default registry.
// Construct it once at startup; promauto registration panics on duplicates.
type PrometheusMetrics struct {
	queriesTotal           *prometheus.CounterVec
	queryDuration          prometheus.Histogram
	optionsReadsTotal      *prometheus.CounterVec
	optionsRefreshesTotal  *prometheus.CounterVec
	optionsRefreshDuration prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		queriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_queries_total",
				Help: "Total number of transaction queries served",
			},
			[]string{"status"},
		),
		queryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_query_duration_seconds",
				Help:    "Transaction query duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		optionsReadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filter_options_reads_total",
				Help: "Filter options cache reads by result",
			},
			[]string{"result"},
		),
		optionsRefreshesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filter_options_refreshes_total",
				Help: "Filter options cache refreshes by status",
			},
			[]string{"status"},
		),
		optionsRefreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "filter_options_refresh_duration_seconds",
				Help:    "Filter options refresh duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordQuery(status string, duration time.Duration) {
	m.queriesTotal.WithLabelValues(status).Inc()
	m.queryDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordOptionsRead(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.optionsReadsTotal.WithLabelValues(result).Inc()
}

func (m *PrometheusMetrics) RecordOptionsRefresh(status string, duration time.Duration) {
	m.optionsRefreshesTotal.WithLabelValues(status).Inc()
	m.optionsRefreshDuration.Observe(duration.Seconds())
}

// noopMetrics discards all observations. Used in tests and anywhere metrics
// are not wired.
type noopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return noopMetrics{} }

func (noopMetrics) RecordQuery(string, time.Duration)          {}
func (noopMetrics) RecordOptionsRead(bool)                     {}
func (noopMetrics) RecordOptionsRefresh(string, time.Duration) {}

// Package metrics provides Prometheus metrics for the recipe contest service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector the service exports.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Contest pipeline
	submissions          prometheus.Counter
	submissionDuplicates prometheus.Counter
	evaluationLatency    prometheus.Histogram
	completionErrors     prometheus.Counter
	parseOutcomes        *prometheus.CounterVec
	suggestions          *prometheus.CounterVec

	// Ledger
	ledgerAppends      prometheus.Counter
	ledgerAppendErrors prometheus.Counter
	ledgerReadErrors   prometheus.Counter
	ledgerRows         prometheus.Gauge
	ledgerLatency      *prometheus.HistogramVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// customRegistry keeps the default Go collectors out of /healthz.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "chefcontest",
		subsystem:        "contest",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}, labels)
}

func (m *Manager) initializeMetrics() {
	m.submissions = m.counter("submissions_total", "Total number of recipe name submissions evaluated")
	m.submissionDuplicates = m.counter("submission_duplicates_total", "Total number of replayed submissions rejected")
	m.evaluationLatency = promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluation_latency_milliseconds",
		Help:        "Latency of the external completion call in milliseconds",
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	})
	m.completionErrors = m.counter("completion_errors_total", "Total number of failed completion calls")
	m.parseOutcomes = m.counterVec("parse_outcomes_total", "Response parser outcomes by matching stage", "stage")
	m.suggestions = m.counterVec("leftover_suggestions_total", "Leftover challenge requests by outcome", "outcome")

	m.ledgerAppends = m.counter("ledger_appends_total", "Total number of rows appended to the ledger")
	m.ledgerAppendErrors = m.counter("ledger_append_errors_total", "Total number of failed ledger writes")
	m.ledgerReadErrors = m.counter("ledger_read_errors_total", "Total number of failed ledger reads")
	m.ledgerRows = m.gauge("ledger_rows", "Number of rows seen on the last ledger load")
	m.ledgerLatency = m.histogramVec("ledger_latency_milliseconds", "Ledger operation latency in milliseconds", "operation")

	m.httpRequests = m.counterVec("http_requests_total", "Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds", "HTTP request duration in milliseconds", "endpoint", "method", "status_code")
	m.httpErrors = m.counterVec("http_errors_total", "HTTP error responses by endpoint and error type", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "System memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
}

// RecordSubmission increments the evaluated submissions counter.
func RecordSubmission() { globalManager.submissions.Inc() }

// RecordSubmissionDuplicate increments the replayed submissions counter.
func RecordSubmissionDuplicate() { globalManager.submissionDuplicates.Inc() }

// RecordEvaluationLatency records the completion call latency.
func RecordEvaluationLatency(latencyMs float64) { globalManager.evaluationLatency.Observe(latencyMs) }

// RecordCompletionError increments the failed completion counter.
func RecordCompletionError() { globalManager.completionErrors.Inc() }

// RecordParseOutcome counts which parser stage produced a result.
func RecordParseOutcome(stage string) { globalManager.parseOutcomes.WithLabelValues(stage).Inc() }

// RecordSuggestion counts a leftover challenge outcome ("ok" or "error").
func RecordSuggestion(outcome string) { globalManager.suggestions.WithLabelValues(outcome).Inc() }

// RecordLedgerAppend adds n appended rows.
func RecordLedgerAppend(n int) { globalManager.ledgerAppends.Add(float64(n)) }

// RecordLedgerAppendError increments the failed write counter.
func RecordLedgerAppendError() { globalManager.ledgerAppendErrors.Inc() }

// RecordLedgerReadError increments the failed read counter.
func RecordLedgerReadError() { globalManager.ledgerReadErrors.Inc() }

// UpdateLedgerRows sets the row gauge.
func UpdateLedgerRows(n int) { globalManager.ledgerRows.Set(float64(n)) }

// RecordLedgerLatency records the latency of a ledger operation ("append" or "load").
func RecordLedgerLatency(operation string, latencyMs float64) {
	globalManager.ledgerLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordHTTPRequest increments the HTTP requests counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordHTTPError counts an error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage updates the memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) { globalManager.systemMemoryUsage.Set(float64(bytes)) }

// UpdateSystemGoroutineCount updates the goroutine gauge.
func UpdateSystemGoroutineCount(count int) { globalManager.systemGoroutineCount.Set(float64(count)) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

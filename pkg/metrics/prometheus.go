// Package metrics provides Prometheus metrics for the scholarfolio service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector exposed by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Metrics cache
	cacheOutcomes      *prometheus.CounterVec
	sourceFetchLatency prometheus.Histogram
	snapshotCitations  prometheus.Gauge
	snapshotHIndex     prometheus.Gauge
	snapshotPubs       prometheus.Gauge
	refreshRuns        *prometheus.CounterVec

	// Key-value store
	storeOpLatency *prometheus.HistogramVec
	storeErrors    *prometheus.CounterVec

	// Site
	pageRenders        *prometheus.CounterVec
	contactSubmissions *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // registry without default Go collectors

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scholarfolio",
		subsystem:        "site",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // flat list of collectors
	auto := promauto.With(m.registry)

	m.cacheOutcomes = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "metrics_cache_outcomes_total",
		Help:      "Scholar metrics lookups by origin (cache, fetched, pending, fallback)",
	}, []string{"origin"})

	m.sourceFetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "metrics_source_fetch_milliseconds",
		Help:      "Latency of scholar metrics source fetches in milliseconds",
		Buckets:   []float64{1, 10, 100, 500, 1000, 2000, 5000},
	})

	m.snapshotCitations = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_total_citations",
		Help:      "Total citations in the last served snapshot",
	})

	m.snapshotHIndex = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_h_index",
		Help:      "h-index in the last served snapshot",
	})

	m.snapshotPubs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_publication_count",
		Help:      "Publication count in the last served snapshot",
	})

	m.refreshRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "metrics_refresh_runs_total",
		Help:      "Background metrics refresh runs by resulting origin",
	}, []string{"origin"})

	m.storeOpLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_operation_milliseconds",
		Help:      "Key-value store operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"driver", "op"})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_errors_total",
		Help:      "Key-value store operation failures",
	}, []string{"driver", "op"})

	m.pageRenders = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "page_renders_total",
		Help:      "Rendered pages by template",
	}, []string{"page"})

	m.contactSubmissions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by result",
	}, []string{"result"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Errors by type and severity",
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Errors by HTTP endpoint",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Heap bytes allocated",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of live goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "Average GC pause in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordCacheOutcome counts a metrics lookup by origin.
func RecordCacheOutcome(origin string) {
	globalManager.cacheOutcomes.WithLabelValues(origin).Inc()
}

// RecordSourceFetchLatency observes one source fetch.
func RecordSourceFetchLatency(latencyMs float64) {
	globalManager.sourceFetchLatency.Observe(latencyMs)
}

// UpdateSnapshot publishes the counts of the last served snapshot.
func UpdateSnapshot(citations, hIndex, publications int) {
	globalManager.snapshotCitations.Set(float64(citations))
	globalManager.snapshotHIndex.Set(float64(hIndex))
	globalManager.snapshotPubs.Set(float64(publications))
}

// RecordRefreshRun counts a background refresh by resulting origin.
func RecordRefreshRun(origin string) {
	globalManager.refreshRuns.WithLabelValues(origin).Inc()
}

// RecordStoreOperation observes a key-value store call.
func RecordStoreOperation(driver, op string, latencyMs float64) {
	globalManager.storeOpLatency.WithLabelValues(driver, op).Observe(latencyMs)
}

// RecordStoreError counts a failed key-value store call.
func RecordStoreError(driver, op string) {
	globalManager.storeErrors.WithLabelValues(driver, op).Inc()
}

// RecordPageRender counts a rendered page.
func RecordPageRender(page string) {
	globalManager.pageRenders.WithLabelValues(page).Inc()
}

// RecordContactSubmission counts a contact form post by result.
func RecordContactSubmission(result string) {
	globalManager.contactSubmissions.WithLabelValues(result).Inc()
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType counts an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint counts an error by endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the heap gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime observes the average GC pause.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

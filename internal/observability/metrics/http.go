package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics owns a dedicated registry: HTTP server metrics plus the
// parse-pipeline counters.
type ServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	parseTotal     *prometheus.CounterVec
	parseDuration  *prometheus.HistogramVec
	fieldMissTotal *prometheus.CounterVec
	batchFiles     *prometheus.HistogramVec
}

func NewServerMetrics(service string) *ServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wbp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wbp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wbp",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	parseTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wbp",
			Subsystem: "parse",
			Name:      "certificates_total",
			Help:      "Total parsed certificates by overall validation status.",
		},
		[]string{"service", "endpoint", "status"},
	)
	parseDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wbp",
			Subsystem: "parse",
			Name:      "duration_seconds",
			Help:      "Extraction and validation duration per certificate.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"service", "endpoint"},
	)
	fieldMissTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wbp",
			Subsystem: "parse",
			Name:      "field_miss_total",
			Help:      "Total certificates where a field category was not found.",
		},
		[]string{"service", "field"},
	)
	batchFiles := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wbp",
			Subsystem: "parse",
			Name:      "batch_files",
			Help:      "Distribution of file counts per batch request.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		parseTotal,
		parseDuration,
		fieldMissTotal,
		batchFiles,
	)

	return &ServerMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		parseTotal:      parseTotal,
		parseDuration:   parseDuration,
		fieldMissTotal:  fieldMissTotal,
		batchFiles:      batchFiles,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *ServerMetrics) RecordParse(service, endpoint, status string, duration time.Duration) {
	if status == "" {
		status = "unknown"
	}
	m.parseTotal.WithLabelValues(service, endpoint, status).Inc()
	m.parseDuration.WithLabelValues(service, endpoint).Observe(duration.Seconds())
}

func (m *ServerMetrics) RecordFieldMiss(service, field string) {
	m.fieldMissTotal.WithLabelValues(service, field).Inc()
}

func (m *ServerMetrics) RecordBatch(service string, files int) {
	m.batchFiles.WithLabelValues(service).Observe(float64(files))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

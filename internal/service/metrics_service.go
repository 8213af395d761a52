package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP layer
// and the domain store. It implements store.Metrics.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	mutationTotal   *prometheus.CounterVec
	snapshotWrites  *prometheus.HistogramVec
	snapshotErrors  *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	mutationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "Total number of domain store mutations",
	}, []string{"collection", "op"})

	snapshotWrites := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_snapshot_write_seconds",
		Help:    "Duration of snapshot backend writes",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	snapshotErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_snapshot_write_errors_total",
		Help: "Total snapshot writes that failed",
	}, []string{"collection"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, mutationTotal, snapshotWrites, snapshotErrors, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		mutationTotal:   mutationTotal,
		snapshotWrites:  snapshotWrites,
		snapshotErrors:  snapshotErrors,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveMutation counts a store mutation per collection and operation.
func (m *MetricsService) ObserveMutation(collection, op string) {
	if m == nil {
		return
	}
	m.mutationTotal.WithLabelValues(collection, op).Inc()
}

// ObserveSnapshotWrite records the latency and outcome of a snapshot write.
func (m *MetricsService) ObserveSnapshotWrite(collection string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.snapshotWrites.WithLabelValues(collection).Observe(duration.Seconds())
	if err != nil {
		m.snapshotErrors.WithLabelValues(collection).Inc()
	}
}

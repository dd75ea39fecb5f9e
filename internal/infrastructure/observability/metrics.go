package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors exposed on /metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	UploadsStored   prometheus.Counter
	UploadsRejected prometheus.Counter
}

// NewMetrics creates and registers the application metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests by route and status"},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		UploadsStored: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "review_photos_stored_total", Help: "Total review photos written to storage"},
		),
		UploadsRejected: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "review_photos_rejected_total", Help: "Total review photos rejected before storage"},
		),
	}
	prometheus.MustRegister(m.RequestsTotal, m.RequestDuration, m.UploadsStored, m.UploadsRejected)
	return m
}

// RecordUploadsStored counts photos written to storage.
func (m *Metrics) RecordUploadsStored(n int) {
	if m == nil {
		return
	}
	m.UploadsStored.Add(float64(n))
}

// RecordUploadRejected counts an upload request rejected before storage.
func (m *Metrics) RecordUploadRejected() {
	if m == nil {
		return
	}
	m.UploadsRejected.Inc()
}

// RecordRequest records one completed HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "newsletter"

// Publish outcomes
const (
	OutcomeAccepted   = "accepted"
	OutcomeReplayed   = "replayed"
	OutcomeConflict   = "conflict"
	OutcomeValidation = "validation_error"
	OutcomeFailed     = "failed"
)

// Delivery outcomes
const (
	DeliverySent    = "sent"
	DeliveryRetried = "retried"
	DeliveryDropped = "dropped"
)

// Metrics holds all Prometheus collectors of the service
type Metrics struct {
	registry *prometheus.Registry

	PublishRequests   *prometheus.CounterVec
	PublishDuration   prometheus.Histogram
	DeliveryTasks     *prometheus.CounterVec
	EnqueuedTasks     prometheus.Counter
	QueueDepth        prometheus.Gauge
	IdempotencySwept  prometheus.Counter
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	HTTPInflight      prometheus.Gauge
	HTTPResponseBytes *prometheus.HistogramVec
}

// NewMetrics registers every collector on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PublishRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_requests_total",
			Help:      "Publish requests by outcome",
		}, []string{"outcome"}),
		PublishDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "publish_duration_seconds",
			Help:      "Time spent accepting a publish request",
			Buckets:   prometheus.DefBuckets,
		}),
		DeliveryTasks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_tasks_total",
			Help:      "Delivery task executions by outcome",
		}, []string{"outcome"}),
		EnqueuedTasks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_tasks_enqueued_total",
			Help:      "Delivery tasks written to the outbox",
		}),
		QueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "delivery_queue_depth",
			Help:      "Pending delivery tasks",
		}),
		IdempotencySwept: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "idempotency_records_swept_total",
			Help:      "Completed idempotency records removed by the retention sweep",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		HTTPInflight: f.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		}),
		HTTPResponseBytes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP responses in bytes.",
			Buckets: []float64{200, 500, 1 << 10, 5 << 10, 25 << 10, 100 << 10, 1 << 20},
		}, []string{"method", "path"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

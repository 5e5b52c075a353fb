package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects Prometheus counters and histograms for the gate service.
// It carries its own registry so the default one stays untouched.
type Metrics struct {
	registry       *prometheus.Registry
	requestsTotal  *prometheus.CounterVec
	rateLimited    prometheus.Counter
	requestSeconds *prometheus.HistogramVec
}

// NewMetrics constructs a metrics registry and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daykeeper",
			Subsystem: "gate",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests.",
		},
		[]string{"method", "status"},
	)
	rateLimited := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "daykeeper",
			Subsystem: "gate",
			Name:      "rate_limited_total",
			Help:      "Total number of requests refused with 429.",
		},
	)
	requestSeconds := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "daykeeper",
			Subsystem: "gate",
			Name:      "request_duration_seconds",
			Help:      "Time spent handling HTTP requests.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method"},
	)

	registry.MustRegister(requestsTotal, rateLimited, requestSeconds)

	return &Metrics{
		registry:       registry,
		requestsTotal:  requestsTotal,
		rateLimited:    rateLimited,
		requestSeconds: requestSeconds,
	}
}

// Handler returns an HTTP handler that serves the metrics registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()

	seconds := duration.Seconds()
	if seconds < 0 {
		return
	}
	m.requestSeconds.WithLabelValues(method).Observe(seconds)
}

func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

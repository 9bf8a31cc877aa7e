// Package prometheus exposes the service's operational metrics.  A single
// Metrics value is shared by the HTTP layer, the builder service and the
// cache so every counter lives in one registry.
package prometheus

import (
	"strconv"
	"time"

	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "molcraft"

// Metrics aggregates every collector the service registers.
type Metrics struct {
	registry *prometheus.Registry

	validationsTotal   *prometheus.CounterVec
	validationDuration prometheus.Histogram
	recognitionsTotal  *prometheus.CounterVec
	cacheRequestsTotal *prometheus.CounterVec
	eventsPublished    *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics builds a Metrics value with its own registry, including the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		validationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Molecule validations, partitioned by stability outcome.",
		}, []string{"outcome"}),
		validationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Time spent validating a molecule.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		recognitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recognitions_total",
			Help:      "Molecule recognition lookups, partitioned by hit or miss.",
		}, []string{"result"}),
		cacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Preset cache lookups, partitioned by hit or miss.",
		}, []string{"result"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Validation events published to the message bus.",
		}, []string{"status"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, partitioned by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.validationsTotal,
		m.validationDuration,
		m.recognitionsTotal,
		m.cacheRequestsTotal,
		m.eventsPublished,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	)
	return m
}

// ObserveValidation records a completed validation.
func (m *Metrics) ObserveValidation(stable bool, elapsed time.Duration) {
	outcome := "unstable"
	if stable {
		outcome = "stable"
	}
	m.validationsTotal.WithLabelValues(outcome).Inc()
	m.validationDuration.Observe(elapsed.Seconds())
}

// ObserveRecognition records a recognition lookup.
func (m *Metrics) ObserveRecognition(hit bool) {
	m.recognitionsTotal.WithLabelValues(hitMiss(hit)).Inc()
}

// ObserveCache records a preset cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	m.cacheRequestsTotal.WithLabelValues(hitMiss(hit)).Inc()
}

// ObserveEventPublish records an attempt to publish a validation event.
func (m *Metrics) ObserveEventPublish(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.eventsPublished.WithLabelValues(status).Inc()
}

// ObserveHTTPRequest records a served HTTP request.  route is the registered
// pattern ("/api/v1/structure/validate"), not the raw URL, to bound label
// cardinality.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler returns the /metrics scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func hitMiss(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

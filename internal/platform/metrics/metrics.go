// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Outcome labels shared by backend and contact collectors.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the service collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	BackendQueries     *prometheus.CounterVec
	BackendDuration    *prometheus.HistogramVec
	ContactSubmissions *prometheus.CounterVec
	SettingsCache      *prometheus.CounterVec
}

// New registers all collectors on a fresh registry, including the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by route prefix and status class.",
		}, []string{"route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route prefix.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		BackendQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "queries_total",
			Help:      "Content backend calls by table, operation and outcome.",
		}, []string{"table", "op", "outcome"}),
		BackendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "query_duration_seconds",
			Help:      "Content backend call latency by table and operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table", "op"}),
		ContactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome (sent, invalid, honeypot, error).",
		}, []string{"outcome"}),
		SettingsCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settings",
			Name:      "cache_lookups_total",
			Help:      "Settings memo lookups by result (memory, store, backend).",
		}, []string{"result"}),
	}
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveContact increments the contact submission counter.
func (m *Metrics) ObserveContact(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

// ObserveSettingsLookup increments the settings memo counter.
func (m *Metrics) ObserveSettingsLookup(result string) {
	if m == nil {
		return
	}
	m.SettingsCache.WithLabelValues(result).Inc()
}

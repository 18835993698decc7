// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/eugenenazirov/runtime-env/internal/namespace"
)

// Metrics groups the collectors registered by the service.
type Metrics struct {
	Registry          *prometheus.Registry
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	Info              *prometheus.GaugeVec
}

// New creates collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "runtime_env",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed, labeled by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "runtime_env",
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of request durations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "runtime_env",
			Name:      "info",
			Help:      "Resolved configuration namespace, labeled by environment and app version.",
		}, []string{"environment", "app_version", "analytics", "debug"}),
	}

	m.Registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPDuration,
		m.Info,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// SetInfo publishes the resolved settings as a constant 1 gauge.
func (m *Metrics) SetInfo(s namespace.Settings) {
	m.Info.Reset()
	m.Info.WithLabelValues(s.Environment, s.AppVersion, boolLabel(s.EnableAnalytics), boolLabel(s.Debug)).Set(1)
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

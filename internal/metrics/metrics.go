// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus collectors of the server and the
// handler that exposes them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Token verification outcomes used as the status label.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
	StatusMissing = "missing"
)

// Metrics holds every collector. Each instance has its own registry, so
// tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	Registrations      prometheus.Counter
	Logins             prometheus.Counter
	TokenVerifications *prometheus.CounterVec
	EventsDropped      prometheus.Counter
}

// New registers all collectors, plus the Go runtime and process collectors,
// on a fresh registry.
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
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "dev_connector_registrations_total",
			Help: "Total number of successful user registrations.",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "dev_connector_logins_total",
			Help: "Total number of successful logins.",
		}),
		TokenVerifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dev_connector_token_verifications_total",
			Help: "Total number of token verification attempts by status.",
		}, []string{"status"}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "dev_connector_events_dropped_total",
			Help: "Total number of domain events dropped because the dispatch queue was full.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics owns the Prometheus collectors shared by both services.
//
// Collectors are registered on an explicit [prometheus.Registerer] so each
// process (and each test) gets its own registry instead of package globals.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups every collector exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	CastChecks   *prometheus.CounterVec
	CastEvents   *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry labelled with service.
func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Count of handled HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Time taken to handle HTTP requests",
				Buckets:     []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
				ConstLabels: constLabels,
			},
			[]string{"method", "route"},
		),
		CastChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "cast_checks_total",
				Help:        "Count of cast existence checks by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		CastEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "cast_events_total",
				Help:        "Count of cast deletion events by direction and status",
				ConstLabels: constLabels,
			},
			[]string{"direction", "status"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.CastChecks,
		m.CastEvents,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

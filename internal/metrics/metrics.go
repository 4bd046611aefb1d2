// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the auth server.
//
// All recording methods are safe to call on a nil *Metrics, so components
// can be constructed without metrics in tests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics contains the collectors recorded by services and the hasher.
type Metrics struct {
	AuthOperations *prometheus.CounterVec
	HashDuration   *prometheus.HistogramVec
	MailFailures   prometheus.Counter
	ActiveRequests prometheus.Gauge

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := NewWithRegisterer(reg)
	m.registry = reg
	return m
}

// NewWithRegisterer creates the collectors and registers them on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AuthOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_operations_total",
				Help: "Total number of auth operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		HashDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "password_hash_duration_seconds",
				Help:    "Duration of password hash and verify operations",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"operation"},
		),
		MailFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mail_send_failures_total",
			Help: "Total number of outbound e-mails that could not be sent",
		}),
		ActiveRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}),
	}

	reg.MustRegister(m.AuthOperations, m.HashDuration, m.MailFailures, m.ActiveRequests)

	return m
}

// Handler returns the exposition handler for the registry created by [New].
// Metrics built with [NewWithRegisterer] expose the default gatherer.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveOperation counts one auth operation.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.AuthOperations.WithLabelValues(operation, outcome).Inc()
}

// ObserveHash records the duration of a hash or verify call.
func (m *Metrics) ObserveHash(op string, seconds float64) {
	if m == nil {
		return
	}
	m.HashDuration.WithLabelValues(op).Observe(seconds)
}

// MailFailed counts an e-mail that could not be delivered to the provider.
func (m *Metrics) MailFailed() {
	if m == nil {
		return
	}
	m.MailFailures.Inc()
}

// RequestStarted and RequestFinished track in-flight HTTP requests.
func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.ActiveRequests.Inc()
}

func (m *Metrics) RequestFinished() {
	if m == nil {
		return
	}
	m.ActiveRequests.Dec()
}

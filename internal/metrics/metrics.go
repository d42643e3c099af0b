// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the Prometheus registry of the server: HTTP request
// instrumentation, account workflow outcomes and the Go/process collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded by [Metrics.RecordAuthAttempt].
const (
	RegisterSuccess = "register_success"
	RegisterFailure = "register_failure"
	VerifySuccess   = "verify_success"
	VerifyFailure   = "verify_failure"
	ResendSuccess   = "resend_success"
	ResendFailure   = "resend_failure"
)

var durationBuckets = []float64{0.1, 0.3, 0.5, 0.7, 1, 3, 5, 7, 10}

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	authAttempts    *prometheus.CounterVec
}

// New builds a fresh registry with every collector registered.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: durationBuckets,
		}, []string{"method", "route", "status_code"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status_code"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authentication_attempts_total",
			Help: "Total number of authentication attempts",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.authAttempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordAuthAttempt counts one account workflow outcome.
func (m *Metrics) RecordAuthAttempt(status string) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(status).Inc()
}

// RecordHTTPRequest observes one finished request.
func (m *Metrics) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(statusCode)
	m.requestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(method, route, code).Inc()
}

// unmatchedRoute labels requests that matched no registered pattern.
const unmatchedRoute = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and count of every request, labelled with the
// chi route pattern to keep cardinality bounded.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.RecordHTTPRequest(r.Method, route, rec.status, time.Since(start))
	})
}

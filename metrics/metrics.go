// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for HTTP traffic and the
// tab/button core. Collectors live on a private registry served at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "deckboard"

// Registry is the registry every collector below is registered on.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	ButtonMutations = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "button_mutations_total",
		Help:      "Successful button mutations by operation (add, update, remove).",
	}, []string{"op"})

	TabsPruned = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tabs_pruned_total",
		Help:      "Tabs deleted automatically after losing their last button.",
	})

	TabConflicts = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tab_conflicts_total",
		Help:      "Tab inserts that lost a uniqueness race and re-read the winner.",
	})

	Imports = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imports_total",
		Help:      "Bulk imports by result (committed, failed).",
	}, []string{"result"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Package metrics holds the prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts finished requests by route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movr_http_requests_total",
		Help: "Total HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movr_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// OperationDuration observes the time spent inside an analysis operation.
	OperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movr_operation_duration_seconds",
		Help:    "Analysis operation latency in seconds.",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
	}, []string{"operation"})

	// OperationInputSize observes the number of input elements per operation.
	OperationInputSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movr_operation_input_size",
		Help:    "Number of observations, sessions or points per analysis call.",
		Buckets: prometheus.ExponentialBuckets(1, 10, 7),
	}, []string{"operation"})

	// OperationErrors counts rejected analysis calls by operation.
	OperationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movr_operation_errors_total",
		Help: "Analysis calls rejected due to invalid input.",
	}, []string{"operation"})
)

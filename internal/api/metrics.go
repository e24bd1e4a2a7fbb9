package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts attempts by operation and result code. The code
	// label is the HTTP status, or "error" for transport failures.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vidnavigator",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "API request attempts by operation and result code.",
	}, []string{"operation", "code"})

	// requestDuration tracks per-attempt latency by operation.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vidnavigator",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "API request latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	// requestRetries counts retries after recoverable failures.
	requestRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vidnavigator",
		Subsystem: "api",
		Name:      "request_retries_total",
		Help:      "Retries issued after recoverable request failures.",
	}, []string{"operation"})
)

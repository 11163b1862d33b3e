package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quickcourt",
			Subsystem: "client",
			Name:      "request_latency_seconds",
			Help:      "End-to-end latency of successful API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Subsystem: "client",
			Name:      "retries_total",
			Help:      "Transparent resends of transient network failures.",
		},
		[]string{"operation"},
	)

	requestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Subsystem: "client",
			Name:      "request_failures_total",
			Help:      "Failed API calls by classified error kind.",
		},
		[]string{"operation", "kind"},
	)
)

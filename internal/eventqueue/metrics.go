package eventqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queueDepth is only written from the worker goroutine, so there is a
// single writer per shard label.
var (
	eventsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Subsystem: "analytics_queue",
			Name:      "events_submitted_total",
			Help:      "Analytics events accepted for background delivery.",
		},
		[]string{"shard"},
	)

	eventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "quickcourt",
			Subsystem: "analytics_queue",
			Name:      "events_dropped_total",
			Help:      "Analytics events dropped without delivery, by reason.",
		},
		[]string{"shard", "reason"},
	)

	deliverDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "quickcourt",
			Subsystem: "analytics_queue",
			Name:      "deliver_duration_seconds",
			Help:      "Latency of individual delivery attempts.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "quickcourt",
			Subsystem: "analytics_queue",
			Name:      "queue_depth",
			Help:      "Current depth of each shard queue.",
		},
		[]string{"shard"},
	)
)

func shardLabel(i int) string { return strconv.Itoa(i) }

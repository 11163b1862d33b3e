package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fallbackServed = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "quickcourt",
		Subsystem: "client",
		Name:      "fallback_responses_total",
		Help:      "Read operations answered from the static dataset.",
	},
	[]string{"operation"},
)

package assembly

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "context_assembly_duration_seconds",
		Help:    "Wall time of one context assembly cycle.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	budgetExceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "context_assembly_budget_exceeded_total",
		Help: "Assembly cycles that ran past the latency budget.",
	})

	sourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_source_failures_total",
		Help: "Signal source fetch failures by source.",
	}, []string{"source"})
)

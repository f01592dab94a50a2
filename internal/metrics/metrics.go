package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "claimportal_backend_request_duration_seconds",
		Help:    "Latency of calls to the claim backend.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"operation", "outcome"},
	)

	ClaimsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "claimportal_claims_submitted_total",
		Help: "Total number of claims accepted by the backend.",
	})

	StageAdvancesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claimportal_stage_advances_total",
		Help: "Stage-advance actions issued from the dashboard.",
	},
		[]string{"action", "outcome"},
	)

	BackendUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "claimportal_backend_up",
		Help: "1 when the last backend probe succeeded, 0 otherwise.",
	})
)

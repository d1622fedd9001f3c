package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricVerificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantscout_verifications_total",
			Help: "Entity verifications by entity type and verification status",
		},
		[]string{"entity_type", "status"},
	)

	MetricResearchCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantscout_research_total",
			Help: "Research dossiers by entity type and outcome (generated or fallback)",
		},
		[]string{"entity_type", "outcome"},
	)

	MetricCompletionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantscout_completion_failures_total",
			Help: "Completion service calls that returned an error",
		},
		[]string{"contract"},
	)

	MetricCompletionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grantscout_completion_duration_seconds",
			Help:    "Duration of completion service calls",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"contract"},
	)

	MetricHistoryWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grantscout_history_write_failures_total",
			Help: "Research history records that could not be persisted",
		},
	)

	MetricRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grantscout_rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"limiter"},
	)
)

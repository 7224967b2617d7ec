package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a remote function call.
const (
	// OutcomeResponse means the remote function answered with a status code.
	OutcomeResponse = "response"
	// OutcomeError means no status was received (token, transport or method failure).
	OutcomeError = "error"
)

// ReasonNone labels calls that ended with a 2xx response.
const ReasonNone = "none"

var (
	remoteCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_calls_total",
			Help:      "Total number of remote function calls",
		},
		[]string{"outcome", "status", "reason"},
	)

	remoteCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_call_duration_seconds",
			Help:      "Remote function call duration in seconds, identity token included",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"outcome"},
	)
)

// ObserveRemoteCall records one remote function call. status is ignored for
// [OutcomeError]. reason is a short failure class, or [ReasonNone]; an empty
// reason is recorded as [ReasonNone].
func ObserveRemoteCall(outcome string, status int, reason string, duration time.Duration) {
	statusLabel := "none"
	if outcome != OutcomeError {
		statusLabel = strconv.Itoa(status)
	}
	if reason == "" {
		reason = ReasonNone
	}

	remoteCallsTotal.WithLabelValues(outcome, statusLabel, reason).Inc()
	remoteCallDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

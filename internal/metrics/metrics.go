package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "requests_total",
			Subsystem: "worldtides",
			Help:      "Tide data requests submitted, by data kind.",
		},
		[]string{"kind"},
	)

	requestFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "request_failures_total",
			Subsystem: "worldtides",
			Help:      "Tide data requests that delivered a failed outcome.",
		},
		[]string{"kind", "reason"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_duration_seconds",
			Subsystem: "worldtides",
			Help:      "Wall time from dispatch to outcome delivery.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(
		requestsTotal,
		requestFailuresTotal,
		requestDuration,
	)
}

// CountRequest records a submitted request for the given data kind.
func CountRequest(kind string) {
	requestsTotal.With(prometheus.Labels{"kind": kind}).Inc()
}

// CountFailure records a delivered failure with its classified reason.
func CountFailure(kind, reason string) {
	requestFailuresTotal.With(prometheus.Labels{"kind": kind, "reason": reason}).Inc()
}

// ObserveDuration records the time a request took to deliver its outcome.
func ObserveDuration(kind string, d time.Duration) {
	requestDuration.With(prometheus.Labels{"kind": kind}).Observe(d.Seconds())
}

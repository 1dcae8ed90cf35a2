// Package metrics provides Prometheus instrumentation for the match
// engine: request counters, scoring latency, and interest outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BrowseRequestsTotal counts match-browse requests, labeled by
	// outcome: "ok", "incomplete_profile", or "fetch_failed".
	BrowseRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matchengine_browse_requests_total",
		Help: "Total number of match browse requests",
	}, []string{"outcome"})

	// ScoringDuration records how long a full enrich+score+filter+sort
	// pass takes over one candidate window.
	ScoringDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "matchengine_scoring_duration_seconds",
		Help:    "Duration of a full scoring pipeline pass",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})

	// InterestsTotal counts send-interest attempts, labeled by result:
	// "sent", "duplicate", "self", "denied".
	InterestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "matchengine_interests_total",
		Help: "Total number of send-interest attempts",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		BrowseRequestsTotal,
		ScoringDuration,
		InterestsTotal,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

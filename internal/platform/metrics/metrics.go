package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	lintRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lintui",
		Name:      "lint_requests_total",
		Help:      "Lint API calls by request kind and result.",
	}, []string{"kind", "result"})

	lintRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lintui",
		Name:      "lint_request_duration_seconds",
		Help:      "Lint API round trip latency by request kind.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"kind"})

	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lintui",
		Name:      "submissions_total",
		Help:      "Form submissions by outcome.",
	}, []string{"outcome"})
)

// ObserveLint records one lint API call.
func ObserveLint(kind, result string, elapsed time.Duration) {
	lintRequestsTotal.WithLabelValues(kind, result).Inc()
	lintRequestDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// CountSubmission records the outcome of one form submission.
func CountSubmission(outcome string) {
	submissionsTotal.WithLabelValues(outcome).Inc()
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

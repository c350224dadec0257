// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, pipeline operations and
// external collaborator calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "seo_pipeline"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Article metrics - track lifecycle movement through the store
	ArticlesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "created_total",
			Help:      "Total number of draft articles created",
		},
	)

	ArticleTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "transitions_total",
			Help:      "Total number of article status transitions by target status and result",
		},
		[]string{"to", "result"},
	)

	AffiliateLinksSelected = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "articles",
			Name:      "affiliate_links_selected",
			Help:      "Number of affiliate links selected per created article",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)

	// Collaborator metrics - track external generation/publishing calls
	CollaboratorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "collaborators",
			Name:      "calls_total",
			Help:      "Total number of external collaborator calls by collaborator and result",
		},
		[]string{"collaborator", "result"},
	)

	CollaboratorCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "collaborators",
			Name:      "call_duration_seconds",
			Help:      "External collaborator call duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"collaborator"},
	)
)

// ObserveArticleCreated records a successful draft creation.
func ObserveArticleCreated(linkCount int) {
	ArticlesCreated.Inc()
	AffiliateLinksSelected.Observe(float64(linkCount))
}

// ObserveTransition records an attempted status transition.
func ObserveTransition(to string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ArticleTransitions.WithLabelValues(to, result).Inc()
}

// ObserveCollaboratorCall records one call to an external collaborator.
func ObserveCollaboratorCall(collaborator string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	CollaboratorCalls.WithLabelValues(collaborator, result).Inc()
	CollaboratorCallDuration.WithLabelValues(collaborator).Observe(time.Since(start).Seconds())
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}

package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path"},
	)

	AICallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_call_latency_ms",
			Help:    "Generative AI call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
		[]string{"operation", "status"},
	)

	RequestTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_request_transitions_total",
			Help: "Project request accept/decline transitions",
		},
		[]string{"status"},
	)

	OnboardingCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "onboarding_completed_total",
			Help: "Professional onboarding submissions that completed",
		},
	)
)

func RecordAICall(operation, status string, d time.Duration) {
	AICallLatency.WithLabelValues(operation, status).Observe(float64(d.Milliseconds()))
}

func Handler() http.Handler {
	return promhttp.Handler()
}

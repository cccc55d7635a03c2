package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring service health and performance
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StatusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_status_transitions_total",
			Help: "Total number of state machine transitions by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	ComplaintsOverdue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "marketplace_complaints_overdue",
			Help: "Number of unresolved complaints past their SLA deadline",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(StatusTransitionsTotal)
	prometheus.MustRegister(ComplaintsOverdue)
}

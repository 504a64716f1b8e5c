package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketvue_backend_requests_total",
			Help: "Backend API calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	backendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ticketvue_backend_request_duration_seconds",
			Help:    "Backend API call latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticketvue_active_sessions",
			Help: "Browser sessions currently holding state",
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketvue_http_requests_total",
			Help: "UI requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

// Backend call outcomes
const (
	OutcomeOK           = "ok"
	OutcomeServerError  = "server_error"
	OutcomeNetworkError = "network_error"
)

// ObserveBackendCall records one backend request
func ObserveBackendCall(endpoint, outcome string, took time.Duration) {
	backendRequests.WithLabelValues(endpoint, outcome).Inc()
	backendDuration.WithLabelValues(endpoint).Observe(took.Seconds())
}

// SessionOpened increments the active session gauge
func SessionOpened() {
	activeSessions.Inc()
}

// SessionClosed decrements the active session gauge
func SessionClosed() {
	activeSessions.Dec()
}

// ObserveHTTPRequest records one served UI request
func ObserveHTTPRequest(method, route string, status int) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ActionsTotal tracks executed ERP actions by kind and outcome.
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "erp_actions_total",
			Help: "Total ERP actions executed",
		},
		[]string{"action", "status"},
	)

	// ERPRequestDuration tracks ERP backend call duration.
	ERPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "erp_request_duration_seconds",
			Help:    "ERP backend request duration",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"action", "status"},
	)

	// LLMTurnDuration tracks model turn duration by turn type.
	LLMTurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_turn_duration_seconds",
			Help:    "Language model turn duration",
			Buckets: []float64{.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"model", "turn_type", "status"},
	)

	// MessagesTotal tracks timeline messages appended by sender.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "timeline_messages_total",
			Help: "Total timeline messages appended",
		},
		[]string{"sender"},
	)

	// SessionsTotal tracks chat sessions created.
	SessionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_sessions_total",
			Help: "Total chat sessions created",
		},
	)

	// SessionsActive tracks live chat sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_sessions_active",
			Help: "Number of active chat sessions",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordERPRequest records metrics for one ERP backend call.
func RecordERPRequest(action, status string, duration float64) {
	ERPRequestDuration.WithLabelValues(action, status).Observe(duration)
}

// RecordLLMTurn records metrics for one model turn.
func RecordLLMTurn(model, turnType, status string, duration float64) {
	LLMTurnDuration.WithLabelValues(model, turnType, status).Observe(duration)
}

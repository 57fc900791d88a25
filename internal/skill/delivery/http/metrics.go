package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch outcomes used as the "result" label.
const (
	resultOK           = "ok"
	resultFallback     = "fallback"
	resultUnauthorized = "unauthorized"
	resultBadRequest   = "bad_request"
	resultError        = "error"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skill_requests_total",
				Help: "Total number of skill requests, partitioned by request type, intent and result.",
			},
			[]string{"request_type", "intent", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skill_request_duration_seconds",
				Help:    "Histogram of skill dispatch durations in seconds, partitioned by request type.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"request_type"},
		),
	}
}

func (m *metrics) observe(requestType, intent, result string, start time.Time) {
	m.requests.WithLabelValues(requestType, intent, result).Inc()
	m.duration.WithLabelValues(requestType).Observe(time.Since(start).Seconds())
}

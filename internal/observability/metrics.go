// Package observability holds the Prometheus metrics and OpenTelemetry
// tracing setup of the server.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for FinTrack.
type Metrics struct {
	// Registry owns these metrics and backs the /metrics endpoint.
	Registry *prometheus.Registry

	rpcDuration     *prometheus.HistogramVec
	rpcTotal        *prometheus.CounterVec
	externalErrors  *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	remindersSent   *prometheus.CounterVec
}

// NewMetrics registers every metric in a fresh registry, so tests can create
// as many as they like.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		rpcDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_rpc_duration_seconds",
				Help:    "Duration of RPC calls by procedure.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		rpcTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_rpc_total",
				Help: "Total RPC calls by procedure and result code.",
			},
			[]string{"procedure", "code"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_external_errors_total",
				Help: "Total errors from external services.",
			},
			[]string{"service"},
		),
		persistFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_persist_failures_total",
				Help: "Total collection saves that failed.",
			},
			[]string{"collection"},
		),
		remindersSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_reminders_total",
				Help: "Total reminder digests by outcome.",
			},
			[]string{"status"},
		),
	}
}

// RecordRPC records one finished RPC.
func (m *Metrics) RecordRPC(procedure, code string, d time.Duration) {
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
	m.rpcTotal.WithLabelValues(procedure, code).Inc()
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrPersistFailure increments the failed-save counter.
func (m *Metrics) IncrPersistFailure(collection string) {
	m.persistFailures.WithLabelValues(collection).Inc()
}

// IncrReminder counts a reminder run; status is "sent", "empty" or "error".
func (m *Metrics) IncrReminder(status string) {
	m.remindersSent.WithLabelValues(status).Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"octavia-hq/vela/pkg/config"
)

// InvokeMetrics tracks operation invocations.
//
// Metrics:
//   - octavia_vela_invoke_total: invocations by backend and outcome
//   - octavia_vela_invoke_duration_seconds: invocation latency histogram
//
// The outcome label carries the result value kind, so partial outcomes like
// not_rank_one are visible separately from errors.
type InvokeMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInvokeMetrics creates and registers invocation metrics.
func NewInvokeMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *InvokeMetrics {
	im := &InvokeMetrics{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "invoke_total",
				Help:      "Total number of operation invocations",
			},
			[]string{"backend", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "invoke_duration_seconds",
				Help:      "Operation invocation duration in seconds",
				Buckets:   cfg.InvokeDurationBuckets,
			},
			[]string{"backend"},
		),
	}

	registry.MustRegister(im.total, im.duration)
	return im
}

// Record records one invocation.
func (im *InvokeMetrics) Record(backend, outcome string, duration time.Duration) {
	im.total.WithLabelValues(backend, outcome).Inc()
	im.duration.WithLabelValues(backend).Observe(duration.Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"octavia-hq/vela/pkg/config"
)

// CompileMetrics tracks descriptor compilation.
//
// Metrics:
//   - octavia_vela_compile_total: compilations by tier, backend and status
//   - octavia_vela_compile_duration_seconds: compilation latency histogram
type CompileMetrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCompileMetrics creates and registers compile metrics.
func NewCompileMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CompileMetrics {
	cm := &CompileMetrics{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "compile_total",
				Help:      "Total number of descriptor compilations",
			},
			[]string{"tier", "backend", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "compile_duration_seconds",
				Help:      "Descriptor compilation duration in seconds",
				Buckets:   cfg.CompileDurationBuckets,
			},
			[]string{"tier", "backend"},
		),
	}

	registry.MustRegister(cm.total, cm.duration)
	return cm
}

// Record records one compilation.
func (cm *CompileMetrics) Record(tier, backend, status string, duration time.Duration) {
	cm.total.WithLabelValues(tier, backend, status).Inc()
	cm.duration.WithLabelValues(tier, backend).Observe(duration.Seconds())
}

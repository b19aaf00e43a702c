package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"octavia-hq/vela/pkg/config"
)

// CacheMetrics tracks the compiled-artifact cache.
//
// Metrics:
//   - octavia_vela_cache_hits_total
//   - octavia_vela_cache_misses_total
//   - octavia_vela_cache_evictions_total (by reason)
//   - octavia_vela_cache_entries
type CacheMetrics struct {
	hitsTotal      prometheus.Counter
	missesTotal    prometheus.Counter
	evictionsTotal *prometheus.CounterVec
	entries        prometheus.Gauge
}

// NewCacheMetrics creates and registers cache metrics.
func NewCacheMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		hitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cache_hits_total",
			Help:      "Total number of artifact cache hits",
		}),
		missesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cache_misses_total",
			Help:      "Total number of artifact cache misses",
		}),
		evictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "cache_evictions_total",
				Help:      "Total number of artifact cache evictions",
			},
			[]string{"reason"},
		),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cache_entries",
			Help:      "Current number of cached artifacts",
		}),
	}

	registry.MustRegister(cm.hitsTotal, cm.missesTotal, cm.evictionsTotal, cm.entries)
	return cm
}

// RecordHit records a cache hit.
func (cm *CacheMetrics) RecordHit() {
	cm.hitsTotal.Inc()
}

// RecordMiss records a cache miss.
func (cm *CacheMetrics) RecordMiss() {
	cm.missesTotal.Inc()
}

// RecordEviction records an eviction by reason: "capacity" when a full cache
// made room, "ttl" when an entry expired, "invalidate" on explicit removal.
func (cm *CacheMetrics) RecordEviction(reason string) {
	cm.evictionsTotal.WithLabelValues(reason).Inc()
}

// UpdateSize updates the entry-count gauge.
func (cm *CacheMetrics) UpdateSize(size int) {
	cm.entries.Set(float64(size))
}

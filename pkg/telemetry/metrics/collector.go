package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"octavia-hq/vela/pkg/config"
)

// Collector owns every Prometheus metric the registry records. It manages
// registration against a single registry and provides one recording method
// per event; when the configuration disables metrics, every method returns
// immediately.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	compile *CompileMetrics
	cache   *CacheMetrics
	invoke  *InvokeMetrics
}

// NewCollector builds a collector from cfg, registering all metrics against
// registry. A nil registry gets a fresh private one.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	// Resolve naming defaults on a copy; cfg stays the caller's.
	resolved := *cfg
	if resolved.Namespace == "" {
		resolved.Namespace = config.DefaultMetricsNS
	}
	if resolved.Subsystem == "" {
		resolved.Subsystem = config.DefaultMetricsSub
	}

	return &Collector{
		config:   cfg,
		registry: registry,
		compile:  NewCompileMetrics(&resolved, registry),
		cache:    NewCacheMetrics(&resolved, registry),
		invoke:   NewInvokeMetrics(&resolved, registry),
	}
}

// Registry returns the underlying Prometheus registry, for mounting a
// metrics endpoint:
//
//	http.Handle("/metrics", promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{}))
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordCompile records one compilation attempt. Tier and backend label the
// outcome; status is "ok" or "error".
func (c *Collector) RecordCompile(tier, backend, status string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.compile.Record(tier, backend, status, duration)
}

// RecordCacheHit records a cache hit.
func (c *Collector) RecordCacheHit() {
	if !c.config.Enabled {
		return
	}
	c.cache.RecordHit()
}

// RecordCacheMiss records a cache miss.
func (c *Collector) RecordCacheMiss() {
	if !c.config.Enabled {
		return
	}
	c.cache.RecordMiss()
}

// RecordCacheEviction records an eviction, labeled by reason ("capacity",
// "ttl", "invalidate").
func (c *Collector) RecordCacheEviction(reason string) {
	if !c.config.Enabled {
		return
	}
	c.cache.RecordEviction(reason)
}

// UpdateCacheSize updates the cache size gauge.
func (c *Collector) UpdateCacheSize(size int) {
	if !c.config.Enabled {
		return
	}
	c.cache.UpdateSize(size)
}

// RecordInvoke records one invocation. Outcome is the result value kind
// ("class", "element", "ring", "ints", "bool", "not_rank_one") or "error".
func (c *Collector) RecordInvoke(backend, outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.invoke.Record(backend, outcome, duration)
}

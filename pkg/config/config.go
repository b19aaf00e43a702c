package config

import "time"

// Config is the top-level configuration.
type Config struct {
	// Cache configures the compiled-artifact cache.
	Cache CacheConfig `yaml:"cache"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Catalog configures the descriptor catalog source.
	Catalog CatalogConfig `yaml:"catalog"`
}

// CacheConfig controls the compiled-artifact cache.
type CacheConfig struct {
	// MaxEntries bounds the cache size; 0 means unlimited.
	MaxEntries int `yaml:"max_entries"`

	// Eviction picks the policy used when the cache is full: "fifo"
	// (default) evicts the oldest entry, "lru" the least recently used one.
	Eviction string `yaml:"eviction"`

	// TTL expires entries after this duration; 0 disables expiry.
	TTL time.Duration `yaml:"ttl"`

	// SweepSchedule is an optional cron expression for scheduled expiry
	// sweeps. Empty disables scheduled sweeps; expired entries are then
	// only dropped lazily on access.
	SweepSchedule string `yaml:"sweep_schedule"`
}

// Eviction policies.
const (
	EvictionFIFO = "fifo"
	EvictionLRU  = "lru"
)

// TelemetryConfig groups the observability settings.
type TelemetryConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus collector.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`

	// CompileDurationBuckets and InvokeDurationBuckets override the
	// histogram buckets, in seconds.
	CompileDurationBuckets []float64 `yaml:"compile_duration_buckets"`
	InvokeDurationBuckets  []float64 `yaml:"invoke_duration_buckets"`
}

// CatalogConfig points at the descriptor catalog.
type CatalogConfig struct {
	// Path is a YAML file or a directory of YAML files.
	Path string `yaml:"path"`

	// Watch reloads descriptors on file changes.
	Watch bool `yaml:"watch"`
}

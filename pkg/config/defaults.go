package config

// Default values applied by ApplyDefaults.
const (
	DefaultCacheMaxEntries = 1024
	DefaultCacheEviction   = EvictionFIFO
	DefaultLoggingLevel    = "info"
	DefaultLoggingFormat   = "text"
	DefaultMetricsNS       = "octavia"
	DefaultMetricsSub      = "vela"
)

// ApplyDefaults fills in zero-valued fields. It never overwrites a value the
// file or the environment set explicitly.
func ApplyDefaults(cfg *Config) {
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = DefaultCacheMaxEntries
	}
	if cfg.Cache.Eviction == "" {
		cfg.Cache.Eviction = DefaultCacheEviction
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}

	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNS
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSub
	}
	if len(cfg.Telemetry.Metrics.CompileDurationBuckets) == 0 {
		// Compilation is microseconds to low milliseconds.
		cfg.Telemetry.Metrics.CompileDurationBuckets = []float64{
			0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01,
		}
	}
	if len(cfg.Telemetry.Metrics.InvokeDurationBuckets) == 0 {
		cfg.Telemetry.Metrics.InvokeDurationBuckets = []float64{
			0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1,
		}
	}
}

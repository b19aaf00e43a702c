package config

import "fmt"

// Validate checks the configuration for values the runtime cannot honor.
// It assumes ApplyDefaults has run.
func Validate(cfg *Config) error {
	if cfg.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.max_entries must not be negative, got %d", cfg.Cache.MaxEntries)
	}
	switch cfg.Cache.Eviction {
	case EvictionFIFO, EvictionLRU:
	default:
		return fmt.Errorf("cache.eviction must be %q or %q, got %q",
			EvictionFIFO, EvictionLRU, cfg.Cache.Eviction)
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", cfg.Cache.TTL)
	}
	if cfg.Cache.SweepSchedule != "" && cfg.Cache.TTL == 0 {
		return fmt.Errorf("cache.sweep_schedule requires cache.ttl to be set")
	}

	switch cfg.Telemetry.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("telemetry.logging.level must be debug, info, warn or error, got %q",
			cfg.Telemetry.Logging.Level)
	}
	switch cfg.Telemetry.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("telemetry.logging.format must be text or json, got %q",
			cfg.Telemetry.Logging.Format)
	}

	return nil
}

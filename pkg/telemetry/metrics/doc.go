// Package metrics provides the Prometheus instrumentation for the vela
// registry: compilation counts and durations by tier and backend, cache
// hits/misses/evictions/size, and invocation counts, durations and outcome
// kinds.
//
// All metrics hang off a Collector built from config.MetricsConfig. A
// disabled collector is a cheap no-op, so callers never need to guard their
// recording calls.
package metrics

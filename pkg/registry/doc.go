// Package registry is the service surface of vela: it holds the known
// operation descriptors, compiles them on demand, and caches the resulting
// artifacts under content-derived keys.
//
// The cache key is a SHA-256 over the descriptor's identity, schema,
// canonically serialized compile-time parameters and hints, so any edit that
// could change the compiled plan changes the key and can never serve a stale
// artifact. The cache is bounded with FIFO eviction by default (LRU
// optionally) and supports TTL expiry, swept lazily on access and, when
// configured, on a cron schedule.
//
// A Registry is safe for concurrent use. It takes its logger, metrics
// collector and cache by injection; zero-value options get sensible
// defaults.
package registry

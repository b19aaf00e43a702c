// Package telemetry groups vela's observability concerns.
//
// The metrics subpackage implements the Prometheus collector covering
// compilation, the artifact cache, and invocations. Logging uses log/slog
// throughout; every component takes its *slog.Logger by injection.
package telemetry

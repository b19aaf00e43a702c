// Package config defines the runtime configuration for the vela registry
// service and CLI: cache sizing and eviction, telemetry, and the descriptor
// catalog location.
//
// Configuration is loaded from a YAML file, filled in with defaults, then
// optionally overridden by VELA_* environment variables, and finally
// validated. Environment variables always win over file values.
//
// Example:
//
//	cfg, err := config.LoadWithEnvOverrides("vela.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
package config

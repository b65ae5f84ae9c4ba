// Package config loads runtime configuration for the fintrack client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations go through timex.Duration, so they may be strings like "5s" or
// integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "storage_path": "fintrack.db",
//	  "request_timeout": "10s",
//	  "auto_logout_on_unauthorized": true,
//	  "expiry_check": false,
//	  "log_level": "info"
//	}
package config

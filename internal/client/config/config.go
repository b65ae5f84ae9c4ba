package config

import "time"

// Config holds runtime settings for the fintrack client.
//
// Fields:
//   - ServerBaseURL: base URL of the finance REST API.
//   - StoragePath: SQLite file holding the persisted session token.
//   - RequestTimeout: per-request HTTP timeout.
//   - AutoLogoutOnUnauthorized: end the session when the API answers 401/403.
//   - ExpiryCheck: drop a restored token whose exp claim is in the past.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL            string
	StoragePath              string
	RequestTimeout           time.Duration
	AutoLogoutOnUnauthorized bool
	ExpiryCheck              bool
	LogLevel                 string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.StoragePath = "fintrack.db"
	c.RequestTimeout = 10 * time.Second
	c.AutoLogoutOnUnauthorized = true
	c.ExpiryCheck = false
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config handles configuration for the development API server,
// including defaults, environment (.env), JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the fintrack API server.
//
// Fields:
//   - Addr: HTTP bind address.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - TokenValidityDuration: lifetime of issued session tokens.
//   - AuthRateLimitRPM: requests per minute per client IP on /user/*.
//   - CORSOrigins: allowed browser origins.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr                  string
	SecretKey             string
	TokenValidityDuration time.Duration
	AuthRateLimitRPM      int
	CORSOrigins           []string
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.AuthRateLimitRPM = 30
	c.CORSOrigins = []string{"*"}
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the environment
// (after loading .env, if present), then an optional JSON file and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

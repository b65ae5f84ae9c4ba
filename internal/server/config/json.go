package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fintrack/internal/flagx"
	"github.com/dmitrijs2005/fintrack/internal/timex"
)

// JsonConfig is the JSON form of Config. Durations go through
// timex.Duration, so "24h" and integer nanoseconds are both accepted.
// Absent fields leave the current value alone.
type JsonConfig struct {
	Addr                  *string         `json:"addr"`
	SecretKey             *string         `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	AuthRateLimitRPM      *int            `json:"auth_rate_limit_rpm"`
	CORSOrigins           []string        `json:"cors_origins"`
	LogLevel              *string         `json:"log_level"`
}

// parseJson loads the JSON file named by -c or -config into config.
// Without either flag nothing happens. Panics on read or unmarshal errors.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != nil {
		config.Addr = *c.Addr
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.AuthRateLimitRPM != nil {
		config.AuthRateLimitRPM = *c.AuthRateLimitRPM
	}
	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvAddr          = "FINTRACK_ADDR"
	EnvSecretKey     = "FINTRACK_JWT_SECRET"
	EnvTokenTTL      = "FINTRACK_TOKEN_TTL"
	EnvAuthRateLimit = "FINTRACK_AUTH_RATE_LIMIT_RPM"
	EnvCORSOrigins   = "FINTRACK_CORS_ORIGINS"
	EnvLogLevel      = "FINTRACK_LOG_LEVEL"
)

// dotenvFiles are loaded (if they exist) before the environment is read.
// Variables already set in the process environment win.
var dotenvFiles = []string{".env"}

// parseEnv overlays cfg with FINTRACK_* environment variables. Malformed
// numbers and durations are ignored.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}

	if v, ok := lookup(EnvAddr); ok {
		cfg.Addr = v
	}
	if v, ok := lookup(EnvSecretKey); ok {
		cfg.SecretKey = v
	}
	if v, ok := lookup(EnvTokenTTL); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidityDuration = d
		}
	}
	if v, ok := lookup(EnvAuthRateLimit); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AuthRateLimitRPM = n
		}
	}
	if v, ok := lookup(EnvCORSOrigins); ok {
		cfg.CORSOrigins = splitCSV(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func splitCSV(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

// noDotenv points parseEnv at a .env file that does not exist.
func noDotenv(t *testing.T) {
	t.Helper()
	orig := dotenvFiles
	t.Cleanup(func() { dotenvFiles = orig })
	dotenvFiles = []string{filepath.Join(t.TempDir(), ".env")}
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	want := &Config{
		Addr:                  ":8080",
		SecretKey:             "secretKey",
		TokenValidityDuration: 24 * time.Hour,
		AuthRateLimitRPM:      30,
		CORSOrigins:           []string{"*"},
		LogLevel:              "info",
	}
	assert.Empty(t, cmp.Diff(want, defaults()))
}

func TestParseEnv(t *testing.T) {
	noDotenv(t)
	t.Setenv(EnvAddr, ":9999")
	t.Setenv(EnvSecretKey, "from-env")
	t.Setenv(EnvTokenTTL, "2h")
	t.Setenv(EnvAuthRateLimit, "5")
	t.Setenv(EnvCORSOrigins, "http://a.test, http://b.test,")
	t.Setenv(EnvLogLevel, "debug")

	cfg := defaults()
	parseEnv(cfg)

	want := &Config{
		Addr:                  ":9999",
		SecretKey:             "from-env",
		TokenValidityDuration: 2 * time.Hour,
		AuthRateLimitRPM:      5,
		CORSOrigins:           []string{"http://a.test", "http://b.test"},
		LogLevel:              "debug",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_MalformedValuesIgnored(t *testing.T) {
	noDotenv(t)
	t.Setenv(EnvTokenTTL, "forever")
	t.Setenv(EnvAuthRateLimit, "many")

	cfg := defaults()
	parseEnv(cfg)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 30, cfg.AuthRateLimitRPM)
}

func TestParseEnv_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FINTRACK_JWT_SECRET=dotenv-secret\n"), 0o600))

	orig := dotenvFiles
	t.Cleanup(func() { dotenvFiles = orig })
	dotenvFiles = []string{path}

	// godotenv.Load sets the variable for the process; register it so
	// t.Setenv restores the previous state afterwards.
	t.Setenv(EnvSecretKey, "")
	require.NoError(t, os.Unsetenv(EnvSecretKey))

	cfg := defaults()
	parseEnv(cfg)
	assert.Equal(t, "dotenv-secret", cfg.SecretKey)
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-a", ":7000", "-s", "flag-secret", "-t", "90m", "-r", "3", "-l", "warn", "-unknown", "x")
	cfg := defaults()
	require.NotPanics(t, func() { parseFlags(cfg) })

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 90*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, 3, cfg.AuthRateLimitRPM)
	assert.Equal(t, "warn", cfg.LogLevel)

	withArgs(t, "-r", "lots")
	require.Panics(t, func() { parseFlags(defaults()) })
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")
	b, err := json.Marshal(map[string]any{
		"addr":                    ":8181",
		"token_validity_duration": "30m",
		"cors_origins":            []string{"http://localhost:5173"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	withArgs(t, "-c", path)
	cfg := defaults()
	parseJson(cfg)

	assert.Equal(t, ":8181", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "secretKey", cfg.SecretKey)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	withArgs(t, "-config", bad)
	require.Panics(t, func() { parseJson(defaults()) })
}

func TestLoadConfig_Precedence(t *testing.T) {
	noDotenv(t)
	t.Setenv(EnvAddr, ":1111")
	t.Setenv(EnvLogLevel, "error")

	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"addr":":2222"}`), 0o600))
	withArgs(t, "-c", path, "-l", "debug")

	cfg := LoadConfig()
	assert.Equal(t, ":2222", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fintrack/internal/flagx"
	"github.com/dmitrijs2005/fintrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from "zero" so a partial file only overrides what it
// names.
type JsonConfig struct {
	ServerBaseURL            *string         `json:"server_base_url"`
	StoragePath              *string         `json:"storage_path"`
	RequestTimeout           *timex.Duration `json:"request_timeout"`
	AutoLogoutOnUnauthorized *bool           `json:"auto_logout_on_unauthorized"`
	ExpiryCheck              *bool           `json:"expiry_check"`
	LogLevel                 *string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Without either flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AutoLogoutOnUnauthorized != nil {
		cfg.AutoLogoutOnUnauthorized = *jc.AutoLogoutOnUnauthorized
	}
	if jc.ExpiryCheck != nil {
		cfg.ExpiryCheck = *jc.ExpiryCheck
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}

package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/fintrack/internal/flagx"
)

var (
	knownFlags = []string{"-a", "-s", "-t", "-auto-logout", "-expire-check", "-l"}
	boolFlags  = []string{"-auto-logout", "-expire-check"}
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string          base URL of the finance API
//	-s string          path of the local session database
//	-t duration        HTTP request timeout, e.g. 5s
//	-auto-logout bool  log out when the API rejects the session
//	-expire-check bool discard expired tokens on start-up
//	-l string          log level
//
// Unknown arguments are filtered out first so other flag sets can share
// os.Args. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags, boolFlags...)

	fs := flag.NewFlagSet("fintrack", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the finance API")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local session database")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "HTTP request timeout")
	fs.BoolVar(&cfg.AutoLogoutOnUnauthorized, "auto-logout", cfg.AutoLogoutOnUnauthorized, "log out when the API rejects the session")
	fs.BoolVar(&cfg.ExpiryCheck, "expire-check", cfg.ExpiryCheck, "discard expired tokens on start-up")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/fintrack/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
//	-a string    HTTP bind address (e.g., ":8080")
//	-s string    JWT HMAC secret key
//	-t duration  token validity, e.g. 24h
//	-r int       auth endpoint rate limit, requests per minute per IP
//	-l string    log level
//
// os.Args is filtered with flagx.FilterArgs first, avoiding collisions with
// other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	fs.IntVar(&config.AuthRateLimitRPM, "r", config.AuthRateLimitRPM, "auth requests per minute per client")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

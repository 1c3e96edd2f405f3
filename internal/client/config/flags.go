package config

import (
	"flag"
	"os"
	"time"

	"github.com/pliablepixels/zmng/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the profile database (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-l string   log level (default from Config)
//	-x          enable the local development reverse proxy
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, to avoid interference with other config stages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-l", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ProfileDBPath, "d", cfg.ProfileDBPath, "path to the profile database")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.DevProxyEnabled, "x", cfg.DevProxyEnabled, "route requests through the local dev proxy")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
}

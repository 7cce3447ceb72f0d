package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/codeshack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API
//	-d string   path of the session database
//	-t int      request timeout in seconds
//	-l string   log level
//
// Only these flags are picked out of args with flagx.FilterArgs, so other
// loaders can share the same argument list.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("codeshack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "base URL of the CodeShack API")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "path of the session database")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -t overrides only when given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.Timeout = time.Duration(*timeout) * time.Second
		}
	})
	if cfg.Timeout <= 0 {
		return fmt.Errorf("parse flags: timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CodeShack CLI.
//
// Fields:
//   - APIURL: base URL of the backend REST API, including the /api prefix.
//   - SessionDB: path of the local SQLite file holding the session.
//   - Timeout: per-request HTTP timeout.
//   - LogLevel: debug, info, warn or error.
//   - RateLimit: client-side request budget per second; 0 disables it.
//   - Dedup: share one response between identical GETs in flight.
type Config struct {
	APIURL    string        `env:"CODESHACK_API_URL"`
	SessionDB string        `env:"CODESHACK_SESSION_DB"`
	Timeout   time.Duration `env:"CODESHACK_TIMEOUT"`
	LogLevel  string        `env:"CODESHACK_LOG_LEVEL"`
	RateLimit float64       `env:"CODESHACK_RATE_LIMIT"`
	Dedup     bool          `env:"CODESHACK_DEDUP"`
}

const (
	DefaultAPIURL    = "http://localhost:5000/api"
	DefaultSessionDB = "~/.codeshack/session.db"
	DefaultTimeout   = 15 * time.Second
	DefaultLogLevel  = "info"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = DefaultAPIURL
	c.SessionDB = DefaultSessionDB
	c.Timeout = DefaultTimeout
	c.LogLevel = DefaultLogLevel
	c.RateLimit = 0
	c.Dedup = false
}

// LoadConfig builds a Config from os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load constructs a Config, applies defaults, then overlays values from the
// .env file, the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

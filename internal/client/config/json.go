package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/codeshack/internal/flagx"
	"github.com/dmitrijs2005/codeshack/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "15s" or as integer nanoseconds. Pointer fields tell "absent"
// from a zero value; only present fields override the runtime Config.
type JSONConfig struct {
	APIURL    *string         `json:"api_url"`
	SessionDB *string         `json:"session_db"`
	Timeout   *timex.Duration `json:"timeout"`
	LogLevel  *string         `json:"log_level"`
	RateLimit *float64        `json:"rate_limit"`
	Dedup     *bool           `json:"dedup"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by -c
// or -config in args. Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIURL != nil {
		cfg.APIURL = *jc.APIURL
	}
	if jc.SessionDB != nil {
		cfg.SessionDB = *jc.SessionDB
	}
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	if jc.Dedup != nil {
		cfg.Dedup = *jc.Dedup
	}
	return nil
}

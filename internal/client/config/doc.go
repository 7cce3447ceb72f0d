// Package config loads runtime configuration for the CodeShack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, loaded with godotenv. It never
//     overrides variables that are already set.
//  3. CODESHACK_* environment variables, parsed with caarlos0/env.
//  4. Optional JSON file selected via flags: -c or -config.
//  5. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-d string   path of the session database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:5000/api",
//	  "session_db": "~/.codeshack/session.db",
//	  "timeout": "15s",
//	  "log_level": "info",
//	  "rate_limit": 5,
//	  "dedup": true
//	}
package config

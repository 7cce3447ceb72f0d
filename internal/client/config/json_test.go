package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_url":    "https://codeshack.example/api",
		"timeout":    "500ms",
		"rate_limit": 4,
		"dedup":      true,
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "https://codeshack.example/api", cfg.APIURL)
		assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, 4.0, cfg.RateLimit)
		assert.True(t, cfg.Dedup)
		assert.Equal(t, DefaultSessionDB, cfg.SessionDB, "absent keys keep their value")
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("sub-second timeout survives flags without -t", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", path}))
		require.NoError(t, parseFlags(cfg, []string{"-c", path}))
		assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
	})

	t.Run("integer nanoseconds", func(t *testing.T) {
		p := writeTempJSON(t, dir, "ns.json", map[string]any{"timeout": int64(2 * time.Second)})
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", p}))
		assert.Equal(t, 2*time.Second, cfg.Timeout)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-a", "x"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJSON(defaults(), []string{"-c", filepath.Join(dir, "nope.json")})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		assert.Error(t, parseJSON(defaults(), []string{"-config", bad}))
	})
}

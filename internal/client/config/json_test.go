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

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"profile_db":      "cams.db",
		"secret_file":     "cams.key",
		"request_timeout": "30s",
		"log_level":       "debug",
		"log_format":      "json",
		"dev_proxy":       true,
		"dev_proxy_addr":  "http://127.0.0.1:9999",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "cams.db", cfg.ProfileDBPath)
		assert.Equal(t, "cams.key", cfg.SecretPath)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, true, cfg.DevProxyEnabled)
		assert.Equal(t, "http://127.0.0.1:9999", cfg.DevProxyAddr)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ProfileDBPath:  "defaults.db",
			SecretPath:     "defaults.key",
			RequestTimeout: 15 * time.Second,
			LogLevel:       "info",
			LogFormat:      "console",
		}
		parseJson(cfg)

		assert.Equal(t, "defaults.db", cfg.ProfileDBPath)
		assert.Equal(t, "defaults.key", cfg.SecretPath)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "console", cfg.LogFormat)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

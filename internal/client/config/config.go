// Package config loads runtime settings for the zmng client shell.
package config

import "time"

// Config holds runtime settings for the zmng CLI.
//
// Fields:
//   - ProfileDBPath: SQLite file holding connection profiles.
//   - SecretPath: per-device secret protecting stored credentials.
//   - RequestTimeout: fixed ceiling applied to every API request.
//   - LogLevel / LogFormat: diagnostic output tuning ("console" or "json").
//   - DevProxyEnabled / DevProxyAddr: local reverse proxy for host-browser
//     development; requests carry the original target host in a header.
type Config struct {
	ProfileDBPath  string
	SecretPath     string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string

	DevProxyEnabled bool
	DevProxyAddr    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ProfileDBPath = "profiles.db"
	c.SecretPath = "device.secret"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.DevProxyEnabled = false
	c.DevProxyAddr = "http://127.0.0.1:3000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (with an optional .env file), a JSON file (if one
// was named with -c/-config), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

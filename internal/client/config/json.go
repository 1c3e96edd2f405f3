package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pliablepixels/zmng/internal/flagx"
	"github.com/pliablepixels/zmng/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type JsonConfig struct {
	ProfileDBPath   string         `json:"profile_db"`
	SecretPath      string         `json:"secret_file"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
	DevProxyEnabled *bool          `json:"dev_proxy"`
	DevProxyAddr    string         `json:"dev_proxy_addr"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flag. No flag, no JSON. Read or unmarshal errors panic:
// an explicitly named config file that cannot be used is fatal
// misconfiguration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ProfileDBPath != "" {
		cfg.ProfileDBPath = jc.ProfileDBPath
	}
	if jc.SecretPath != "" {
		cfg.SecretPath = jc.SecretPath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	if jc.DevProxyEnabled != nil {
		cfg.DevProxyEnabled = *jc.DevProxyEnabled
	}
	if jc.DevProxyAddr != "" {
		cfg.DevProxyAddr = jc.DevProxyAddr
	}
}

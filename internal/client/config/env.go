package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envConfig is a DTO used exclusively for environment parsing. Pointer
// fields distinguish "unset" from zero values so the overlay never
// clobbers defaults with empties.
type envConfig struct {
	ProfileDBPath   *string        `envconfig:"PROFILE_DB"`
	SecretPath      *string        `envconfig:"SECRET_FILE"`
	RequestTimeout  *time.Duration `envconfig:"REQUEST_TIMEOUT"`
	LogLevel        *string        `envconfig:"LOG_LEVEL"`
	LogFormat       *string        `envconfig:"LOG_FORMAT"`
	DevProxyEnabled *bool          `envconfig:"DEV_PROXY"`
	DevProxyAddr    *string        `envconfig:"DEV_PROXY_ADDR"`
}

// parseEnv overlays Config with ZMNG_-prefixed environment variables,
// loading a .env file first when one exists.
func parseEnv(cfg *Config) {
	_ = godotenv.Overload()

	var ec envConfig
	if err := envconfig.Process("zmng", &ec); err != nil {
		panic(err)
	}

	if ec.ProfileDBPath != nil {
		cfg.ProfileDBPath = *ec.ProfileDBPath
	}
	if ec.SecretPath != nil {
		cfg.SecretPath = *ec.SecretPath
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.LogFormat != nil {
		cfg.LogFormat = *ec.LogFormat
	}
	if ec.DevProxyEnabled != nil {
		cfg.DevProxyEnabled = *ec.DevProxyEnabled
	}
	if ec.DevProxyAddr != nil {
		cfg.DevProxyAddr = *ec.DevProxyAddr
	}
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"moduled/pkg/types"
)

// Defaults applied by WithDefaults when the corresponding field is unset.
const (
	DefaultAddr         = ":8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultMaxBodyBytes = int64(1 << 20)
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "MODULED_"

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr          string         `json:"addr" yaml:"addr" toml:"addr" env:"ADDR"`
	InitialModule types.ModuleID `json:"initial_module" yaml:"initial_module" toml:"initial_module" env:"INITIAL_MODULE"`
	LogLevel      string         `json:"log_level" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	LogFormat     string         `json:"log_format" yaml:"log_format" toml:"log_format" env:"LOG_FORMAT"`
	MaxBodyBytes  int64          `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	CORSEnabled   bool           `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled" env:"CORS_ENABLED"`
	CORSOrigins   []string       `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	CORSMethods   []string       `json:"cors_methods" yaml:"cors_methods" toml:"cors_methods" env:"CORS_METHODS" envSeparator:","`
	CORSHeaders   []string       `json:"cors_headers" yaml:"cors_headers" toml:"cors_headers" env:"CORS_HEADERS" envSeparator:","`
}

// ApplyEnv overlays MODULED_* environment variables onto cfg. Unset
// variables leave the corresponding field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// WithDefaults returns cfg with unset fields filled in.
func (cfg Config) WithDefaults() Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if !cfg.InitialModule.Valid() {
		cfg.InitialModule = types.ModuleOne
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return cfg
}

// Package config loads runtime settings for the back-office CLI.
//
// Sources are applied in order, later ones winning:
// defaults -> environment variables -> JSON file (-c/-config) -> flags.
// The result is validated before use.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// APIBaseURL is the fixed base URL of the back-office API. Callers never
	// override it per request.
	APIBaseURL string `env:"OHNS_API_BASE_URL" validate:"required,url"`

	// RequestTimeout bounds every API call end to end.
	RequestTimeout time.Duration `env:"OHNS_REQUEST_TIMEOUT"`

	// DataDir is where the credential store keeps its files.
	DataDir string `env:"OHNS_DATA_DIR" validate:"required"`

	// StoreBackend selects the credential store backing: "sqlite" (encrypted
	// at rest), "file", or "auto" to probe sqlite and fall back to file.
	StoreBackend string `env:"OHNS_STORE_BACKEND" validate:"oneof=auto sqlite file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"OHNS_LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.ohnsapp.iconiksoftware.com"
	c.RequestTimeout = 30 * time.Second
	c.DataDir = ".ohns"
	c.StoreBackend = "auto"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

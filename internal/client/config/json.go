package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmuwanga/ohns-backoffice/internal/flagx"
	"github.com/dmuwanga/ohns-backoffice/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DataDir        *string         `json:"data_dir"`
	StoreBackend   *string         `json:"store_backend"`
	LogLevel       *string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// Absent file path means no JSON stage; absent fields keep their values.
func parseJSON(cfg *Config) error {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.StoreBackend != nil {
		cfg.StoreBackend = *jc.StoreBackend
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}

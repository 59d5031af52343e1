package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/greenpath/internal/flagx"
	"github.com/dmitrijs2005/greenpath/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	AdvisorEndpoint string         `json:"advisor_endpoint"`
	AdvisorTimeout  timex.Duration `json:"advisor_timeout"`
	SaveDelay       timex.Duration `json:"save_delay"`
	MetricsAddr     string         `json:"metrics_addr"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Keys missing from the file keep their current values. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		DatabasePath:    cfg.DatabasePath,
		AdvisorEndpoint: cfg.AdvisorEndpoint,
		AdvisorTimeout:  timex.Duration{Duration: cfg.AdvisorTimeout},
		SaveDelay:       timex.Duration{Duration: cfg.SaveDelay},
		MetricsAddr:     cfg.MetricsAddr,
		LogLevel:        cfg.LogLevel,
		LogFormat:       cfg.LogFormat,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.DatabasePath = jc.DatabasePath
	cfg.AdvisorEndpoint = jc.AdvisorEndpoint
	cfg.AdvisorTimeout = jc.AdvisorTimeout.Duration
	cfg.SaveDelay = jc.SaveDelay.Duration
	cfg.MetricsAddr = jc.MetricsAddr
	cfg.LogLevel = jc.LogLevel
	cfg.LogFormat = jc.LogFormat
}

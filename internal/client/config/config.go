package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the GreenPath CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding profiles, session and feedback.
//   - AdvisorEndpoint: base URL of the AI advisor; empty uses the offline advisor.
//   - AdvisorTimeout: per-request timeout for the advisor.
//   - SaveDelay: pause before user-triggered writes apply.
//   - MetricsAddr: host:port for the /metrics listener; empty disables it.
//   - LogLevel, LogFormat: slog level (debug|info|warn|error) and handler (text|json).
type Config struct {
	DatabasePath    string
	AdvisorEndpoint string
	AdvisorTimeout  time.Duration
	SaveDelay       time.Duration
	MetricsAddr     string
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "greenpath.db"
	c.AdvisorEndpoint = ""
	c.AdvisorTimeout = 30 * time.Second
	c.SaveDelay = 500 * time.Millisecond
	c.MetricsAddr = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. It panics on an unreadable config file or
// malformed flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "/tmp/gp.db", "-a", "http://127.0.0.1:3400", "-t", "5", "-s", "0", "-m", ":9091", "-l", "debug", "-f", "json"},
			expected: &Config{
				DatabasePath:    "/tmp/gp.db",
				AdvisorEndpoint: "http://127.0.0.1:3400",
				AdvisorTimeout:  5 * time.Second,
				SaveDelay:       0,
				MetricsAddr:     ":9091",
				LogLevel:        "debug",
				LogFormat:       "json",
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"-x", "1", "-c", "cfg.json", "-d=other.db"},
			expected: &Config{
				DatabasePath:   "other.db",
				AdvisorTimeout: 30 * time.Second,
				SaveDelay:      500 * time.Millisecond,
				LogLevel:       "info",
				LogFormat:      "text",
			},
		},
		{name: "bad timeout", args: []string{"-t", "abc"}, expectPanic: true},
		{name: "bad save delay", args: []string{"-s", "1.5"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

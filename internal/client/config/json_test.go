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
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_path":    "/data/gp.db",
		"advisor_endpoint": "http://advisor:3400",
		"advisor_timeout":  "10s",
		"save_delay":       250_000_000,
		"metrics_addr":     "127.0.0.1:9091",
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", pathFlag})

		assert.Equal(t, "/data/gp.db", cfg.DatabasePath)
		assert.Equal(t, "http://advisor:3400", cfg.AdvisorEndpoint)
		assert.Equal(t, 10*time.Second, cfg.AdvisorTimeout)
		assert.Equal(t, 250*time.Millisecond, cfg.SaveDelay)
		assert.Equal(t, "127.0.0.1:9091", cfg.MetricsAddr)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep their value")
	})

	t.Run("loads from -c", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-c", pathFlag})
		assert.Equal(t, "/data/gp.db", cfg.DatabasePath)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{DatabasePath: "defaults.db", SaveDelay: 42 * time.Second}
		parseJson(cfg, []string{"-d", "x.db"})

		assert.Equal(t, "defaults.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.SaveDelay)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-config", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}

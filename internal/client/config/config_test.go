package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"client"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.NotEmpty(t, cfg.BackendOrigin)
	require.Equal(t, "village.db", cfg.DatabaseDSN)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("VILLAGE_BACKEND_ORIGIN", "http://localhost:9000")
	t.Setenv("VILLAGE_DB", "/tmp/test.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "http://localhost:9000", cfg.BackendOrigin)
	require.Equal(t, "/tmp/test.db", cfg.DatabaseDSN)
}

func TestParseEnv_UnsetKeepsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	origin := cfg.BackendOrigin

	parseEnv(cfg)

	require.Equal(t, origin, cfg.BackendOrigin)
	require.Equal(t, "village.db", cfg.DatabaseDSN)
}

func TestParseJson_Overlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"backend_origin":"http://localhost:9001","database_dsn":"local.db"}`), 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:9001", cfg.BackendOrigin)
	require.Equal(t, "local.db", cfg.DatabaseDSN)
}

func TestParseFlags_Overlays(t *testing.T) {
	withArgs(t, "-a", "http://localhost:9002", "-d", "other.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "http://localhost:9002", cfg.BackendOrigin)
	require.Equal(t, "other.db", cfg.DatabaseDSN)
}

func TestLoadConfig_LaterSourcesWin(t *testing.T) {
	t.Setenv("VILLAGE_BACKEND_ORIGIN", "http://localhost:9000")
	withArgs(t, "-a", "http://localhost:9002")

	cfg := LoadConfig()

	// Flags take precedence over the environment.
	require.Equal(t, "http://localhost:9002", cfg.BackendOrigin)
}

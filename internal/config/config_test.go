package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "config.yaml"))
	for _, key := range []string{
		"PORT", "DATABASE_URL", "REDIS_URL", "EXACT_SOLVER", "EXACT_MAX_STOPS",
		"EXACT_TIMEOUT", "HELD_KARP_MAX_STOPS", "MAX_VEHICLES", "MAX_STOPS",
		"RATE_RPS", "RATE_BURST", "CORS_ALLOW_ORIGIN",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 50, cfg.Limits.MaxVehicles)
	assert.Equal(t, 1000, cfg.Limits.MaxStops)
	assert.Equal(t, "auto", cfg.Solver.Exact.Mode)
	assert.Zero(t, cfg.Solver.Exact.HeldKarpMaxStops)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	dir := isolate(t)

	yaml := `
port: "9090"
solver:
  exact:
    mode: "off"
    max_stops: 120
    timeout: 750ms
limits:
  max_vehicles: 8
http:
  cors_allow_origin: "https://dashboard.example.com"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("MAX_VEHICLES", "12")
	t.Setenv("EXACT_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "off", cfg.Solver.Exact.Mode)
	assert.Equal(t, 120, cfg.Solver.Exact.MaxStops)
	assert.Equal(t, 3*time.Second, cfg.Solver.Exact.Timeout)
	assert.Equal(t, 12, cfg.Limits.MaxVehicles)
	assert.Equal(t, 1000, cfg.Limits.MaxStops)
	assert.Equal(t, "https://dashboard.example.com", cfg.HTTP.CORSAllowOrigin)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"MAX_STOPS", "lots"},
		{"EXACT_TIMEOUT", "soon"},
		{"RATE_RPS", "fast"},
		{"EXACT_SOLVER", "always"},
		{"MAX_VEHICLES", "0"},
		{"HELD_KARP_MAX_STOPS", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("limits: [1, 2"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "parse")
}

func TestGet(t *testing.T) {
	t.Setenv("ROUTE_TEST_KEY", "  value ")
	assert.Equal(t, "value", Get("ROUTE_TEST_KEY", "fallback"))

	t.Setenv("ROUTE_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("ROUTE_TEST_KEY", "fallback"))
}

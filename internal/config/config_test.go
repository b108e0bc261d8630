package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercarlo/internal/evaluator"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5000, cfg.Simulation.Trials)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "pokercarlo.hcl", `
log_level = "debug"

simulation {
  trials  = 20000
  workers = 2
  seed    = 42
  engine  = "lookup"
}

server {
  port = 9090
}
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SimulationSettings{Trials: 20000, Workers: 2, Seed: 42, Engine: evaluator.EngineLookup}, cfg.Simulation)
	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 1_000_000, cfg.Server.MaxTrials)
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadFileInvalid(t *testing.T) {
	path := writeFile(t, "bad.hcl", `simulation { trials = "many" `)
	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvTrials:   "100",
		EnvWorkers:  "3",
		EnvSeed:     "-7",
		EnvEngine:   "lookup",
		EnvLogLevel: "warn",
		EnvAddress:  "0.0.0.0",
		EnvPort:     "",
	}))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Simulation.Trials)
	assert.Equal(t, 3, cfg.Simulation.Workers)
	assert.Equal(t, int64(-7), cfg.Simulation.Seed)
	assert.Equal(t, "lookup", cfg.Simulation.Engine)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestApplyEnvInvalid(t *testing.T) {
	for _, key := range []string{EnvTrials, EnvWorkers, EnvSeed, EnvPort} {
		t.Run(key, func(t *testing.T) {
			err := Default().ApplyEnv(envMap(map[string]string{key: "lots"}))
			require.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero trials", func(c *Config) { c.Simulation.Trials = 0 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -1 }},
		{"unknown engine", func(c *Config) { c.Simulation.Engine = "magic" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"zero max trials", func(c *Config) { c.Server.MaxTrials = 0 }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadWithEnvFile(t *testing.T) {
	_, set := os.LookupEnv(EnvTrials)
	if set {
		t.Skipf("%s already set in the environment", EnvTrials)
	}
	t.Cleanup(func() { os.Unsetenv(EnvTrials) })

	envFile := writeFile(t, ".env", EnvTrials+"=1234\n")
	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Simulation.Trials)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
}

func TestSimulatorOptions(t *testing.T) {
	opts, err := Default().SimulatorOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	cfg := Default()
	cfg.Simulation.Engine = "magic"
	_, err = cfg.SimulatorOptions()
	require.Error(t, err)
}

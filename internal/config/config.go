// Package config loads pokercarlo settings from an HCL file, an optional .env
// file and POKERCARLO_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/lox/pokercarlo/internal/evaluator"
	"github.com/lox/pokercarlo/internal/montecarlo"
)

// DefaultFile is the config file read when none is given
const DefaultFile = "pokercarlo.hcl"

// Environment variable names
const (
	EnvTrials   = "POKERCARLO_TRIALS"
	EnvWorkers  = "POKERCARLO_WORKERS"
	EnvSeed     = "POKERCARLO_SEED"
	EnvEngine   = "POKERCARLO_ENGINE"
	EnvLogLevel = "POKERCARLO_LOG_LEVEL"
	EnvAddress  = "POKERCARLO_ADDRESS"
	EnvPort     = "POKERCARLO_PORT"
)

// Config represents the complete configuration
type Config struct {
	LogLevel   string
	Simulation SimulationSettings
	Server     ServerSettings
}

// SimulationSettings controls the Monte Carlo runs
type SimulationSettings struct {
	Trials  int    `hcl:"trials,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    int64  `hcl:"seed,optional"`
	Engine  string `hcl:"engine,optional"`
}

// ServerSettings controls the HTTP API
type ServerSettings struct {
	Address   string `hcl:"address,optional"`
	Port      int    `hcl:"port,optional"`
	MaxTrials int    `hcl:"max_trials,optional"`
}

// fileConfig mirrors the HCL layout; blocks are optional
type fileConfig struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Server     *ServerSettings     `hcl:"server,block"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Simulation: SimulationSettings{
			Trials: montecarlo.DefaultTrials,
			Engine: evaluator.EngineKicker,
		},
		Server: ServerSettings{
			Address:   "localhost",
			Port:      8080,
			MaxTrials: 1_000_000,
		},
	}
}

// Load reads filename (a missing file yields defaults), then envFile and the
// process environment. The result is validated.
func Load(filename, envFile string) (*Config, error) {
	cfg, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from an HCL file
func LoadFile(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.merge(fc)
	return cfg, nil
}

// merge copies every value set in the file over the defaults
func (c *Config) merge(fc fileConfig) {
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if s := fc.Simulation; s != nil {
		if s.Trials != 0 {
			c.Simulation.Trials = s.Trials
		}
		if s.Workers != 0 {
			c.Simulation.Workers = s.Workers
		}
		if s.Seed != 0 {
			c.Simulation.Seed = s.Seed
		}
		if s.Engine != "" {
			c.Simulation.Engine = s.Engine
		}
	}
	if s := fc.Server; s != nil {
		if s.Address != "" {
			c.Server.Address = s.Address
		}
		if s.Port != 0 {
			c.Server.Port = s.Port
		}
		if s.MaxTrials != 0 {
			c.Server.MaxTrials = s.MaxTrials
		}
	}
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvTrials, &c.Simulation.Trials},
		{EnvWorkers, &c.Simulation.Workers},
		{EnvPort, &c.Server.Port},
	}
	for _, v := range ints {
		if s, ok := lookup(v.key); ok && s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("invalid %s value: %w", v.key, err)
			}
			*v.dst = n
		}
	}

	if s, ok := lookup(EnvSeed); ok && s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Simulation.Seed = seed
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvEngine, &c.Simulation.Engine},
		{EnvLogLevel, &c.LogLevel},
		{EnvAddress, &c.Server.Address},
	}
	for _, v := range strs {
		if s, ok := lookup(v.key); ok && s != "" {
			*v.dst = s
		}
	}
	return nil
}

// Validate checks the configuration for values the simulator cannot use
func (c *Config) Validate() error {
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("simulation.trials must be at least 1, got %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative, got %d", c.Simulation.Workers)
	}
	if _, err := evaluator.New(c.Simulation.Engine); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxTrials < 1 {
		return fmt.Errorf("server.max_trials must be at least 1, got %d", c.Server.MaxTrials)
	}
	return nil
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// SimulatorOptions returns the montecarlo options for these settings
func (c *Config) SimulatorOptions() ([]montecarlo.Option, error) {
	engine, err := evaluator.New(c.Simulation.Engine)
	if err != nil {
		return nil, err
	}
	return []montecarlo.Option{
		montecarlo.WithTrials(c.Simulation.Trials),
		montecarlo.WithWorkers(c.Simulation.Workers),
		montecarlo.WithSeed(c.Simulation.Seed),
		montecarlo.WithEngine(engine),
	}, nil
}

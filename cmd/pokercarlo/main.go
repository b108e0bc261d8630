package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/lox/pokercarlo/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand
type Globals struct {
	Config   string `kong:"default='pokercarlo.hcl',help='Path to HCL config file'"`
	EnvFile  string `kong:"name='env-file',default='.env',help='Path to .env file'"`
	LogLevel string `kong:"help='Override the configured log level (debug, info, warn, error)'"`
	Debug    bool   `kong:"help='Enable debug logging and dump the resolved config'"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Odds    OddsCmd          `cmd:"" help:"Estimate heads-up win and tie odds"`
	Serve   ServeCmd         `cmd:"" help:"Serve the odds API over HTTP"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokercarlo"),
		kong.Description("Monte Carlo odds for heads-up Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads the configuration and builds the logger
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config, g.EnvFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if g.LogLevel != "" {
		if _, err := log.ParseLevel(g.LogLevel); err != nil {
			return nil, nil, fmt.Errorf("invalid --log-level %q: %w", g.LogLevel, err)
		}
		cfg.LogLevel = g.LogLevel
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
	})
	if g.Debug {
		logger.Debug("resolved config", "file", g.Config, "config", litter.Sdump(cfg))
	}
	return cfg, logger, nil
}

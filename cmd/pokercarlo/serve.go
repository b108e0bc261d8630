package main

import (
	"net"
	"strconv"

	"github.com/lox/pokercarlo/internal/httpapi"
)

// ServeCmd runs the HTTP odds API
type ServeCmd struct {
	Addr string `kong:"help='Listen address, overriding the configured address and port'"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	opts, err := cfg.SimulatorOptions()
	if err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = net.JoinHostPort(cfg.Server.Address, strconv.Itoa(cfg.Server.Port))
	}

	logger.Info("starting pokercarlo server",
		"address", addr,
		"engine", cfg.Simulation.Engine,
		"default_trials", cfg.Simulation.Trials,
		"max_trials", cfg.Server.MaxTrials)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	return httpapi.NewServer(opts, cfg.Server.MaxTrials, logger).ListenAndServe(ctx, addr)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/pokercarlo/internal/deck"
	"github.com/lox/pokercarlo/internal/evaluator"
	"github.com/lox/pokercarlo/internal/montecarlo"
)

// OddsCmd estimates the odds of two hands
type OddsCmd struct {
	Hands   []string `arg:"" help:"Two hole-card hands, e.g. 'Ah 5s' 'Jd 5d'"`
	Board   string   `short:"b" help:"Known community cards (e.g. 'Qs Qd Qc')"`
	Trials  *int     `short:"n" help:"Number of Monte Carlo trials"`
	Seed    *int64   `help:"Random seed for reproducible results (0 seeds from the clock)"`
	Workers *int     `short:"w" help:"Number of parallel workers"`
	Engine  string   `short:"e" help:"Hand evaluator engine (kicker or lookup)"`
}

func (c *OddsCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	board, err := deck.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	if c.Trials != nil {
		cfg.Simulation.Trials = *c.Trials
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.Workers != nil {
		cfg.Simulation.Workers = *c.Workers
	}
	if c.Engine != "" {
		cfg.Simulation.Engine = c.Engine
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.SimulatorOptions()
	if err != nil {
		return err
	}
	opts = append(opts, montecarlo.WithLogger(logger))

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	result, err := montecarlo.New(opts...).Run(ctx, hands, board)
	if err != nil {
		return err
	}

	displayResults(os.Stdout, hands, board, result, describeHands(hands, board))
	return nil
}

func parseHands(handStrings []string) ([2]deck.Hand, error) {
	var hands [2]deck.Hand
	if len(handStrings) != 2 {
		return hands, fmt.Errorf("exactly 2 hands are required, got %d", len(handStrings))
	}
	for i, handStr := range handStrings {
		hand, err := deck.ParseHand(strings.TrimSpace(handStr))
		if err != nil {
			return hands, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i] = hand
	}
	return hands, nil
}

// describeHands names each hand when the board is complete, otherwise it
// returns empty names
func describeHands(hands [2]deck.Hand, board []deck.Card) [2]string {
	var names [2]string
	if len(board) != 5 {
		return names
	}
	var lookup evaluator.Lookup
	for i, hand := range hands {
		name, err := lookup.Describe(append(hand.Cards(), board...))
		if err == nil {
			names[i] = name
		}
	}
	return names
}

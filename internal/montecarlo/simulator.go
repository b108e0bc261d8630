// Package montecarlo estimates heads-up win and tie probabilities by sampling
// the unseen community cards.
package montecarlo

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokercarlo/internal/deck"
	"github.com/lox/pokercarlo/internal/evaluator"
	"github.com/lox/pokercarlo/internal/randutil"
	"github.com/lox/pokercarlo/internal/statistics"
)

// DefaultTrials is the number of boards sampled when no count is given.
const DefaultTrials = 5000

const (
	maxWorkers = 8
	// workers poll for cancellation every checkEvery trials
	checkEvery = 256
)

// Result holds the outcome counts of one simulation run.
type Result struct {
	RunID    string
	Trials   int
	Wins     [2]int
	Ties     int
	Duration time.Duration
}

// Percentages returns the win percentage of each hand and the tie percentage.
func (r *Result) Percentages() (p1, p2, tie float64) {
	if r.Trials == 0 {
		return 0, 0, 0
	}
	total := float64(r.Trials)
	return float64(r.Wins[0]) / total * 100,
		float64(r.Wins[1]) / total * 100,
		float64(r.Ties) / total * 100
}

// Margins95 returns the 95% margin of error of each percentage, in
// percentage points.
func (r *Result) Margins95() (m1, m2, tie float64) {
	margin := func(hits int) float64 {
		return statistics.Proportion{Hits: hits, Trials: r.Trials}.Margin95() * 100
	}
	return margin(r.Wins[0]), margin(r.Wins[1]), margin(r.Ties)
}

// Simulator runs Monte Carlo trials across a pool of workers
type Simulator struct {
	trials  int
	workers int
	seed    int64
	engine  evaluator.Engine
	logger  *log.Logger
	clock   quartz.Clock
}

// Option is a functional option for configuring the Simulator
type Option func(*Simulator)

// WithTrials sets the number of sampled boards
func WithTrials(n int) Option {
	return func(s *Simulator) {
		s.trials = n
	}
}

// WithWorkers sets the number of parallel workers (values below 1 are ignored)
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithSeed sets the random seed for reproducible results. Zero seeds from the
// clock on every run.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

// WithEngine sets the hand evaluator
func WithEngine(e evaluator.Engine) Option {
	return func(s *Simulator) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithLogger sets the logger used for run diagnostics
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the clock used to time runs
func WithClock(c quartz.Clock) Option {
	return func(s *Simulator) {
		if c != nil {
			s.clock = c
		}
	}
}

// New creates a simulator with the given options
func New(opts ...Option) *Simulator {
	s := &Simulator{
		trials:  DefaultTrials,
		workers: min(runtime.NumCPU(), maxWorkers),
		engine:  evaluator.Kicker{},
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate runs trials boards for two hands and returns the win percentage of
// each hand and the tie percentage.
func Simulate(ctx context.Context, hands [2]deck.Hand, community []deck.Card, trials int) (p1, p2, tie float64, err error) {
	result, err := New(WithTrials(trials)).Run(ctx, hands, community)
	if err != nil {
		return 0, 0, 0, err
	}
	p1, p2, tie = result.Percentages()
	return p1, p2, tie, nil
}

// tally holds the private counters of one worker
type tally struct {
	wins [2]int
	ties int
}

func (t *tally) record(s1, s2 float64, n int) {
	switch {
	case s1 > s2:
		t.wins[0] += n
	case s2 > s1:
		t.wins[1] += n
	default:
		t.ties += n
	}
}

// Run samples the missing community cards and tallies which hand wins each
// trial. community is never modified.
func (s *Simulator) Run(ctx context.Context, hands [2]deck.Hand, community []deck.Card) (*Result, error) {
	if len(community) > 5 {
		return nil, fmt.Errorf("%w, got %d", ErrCommunitySize, len(community))
	}
	if s.trials < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidTrials, s.trials)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := deck.BuildDeck(hands[:], community)
	if err != nil {
		return nil, fmt.Errorf("building deck: %w", err)
	}
	needed := 5 - len(community)
	if err := checkDrawable(needed, d.Len()); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString(), Trials: s.trials}
	start := s.clock.Now()

	workers := min(s.workers, s.trials)
	if needed == 0 {
		workers = 0
	}
	s.logger.Debug("starting simulation",
		"run_id", result.RunID,
		"hands", []string{hands[0].String(), hands[1].String()},
		"community", len(community),
		"trials", s.trials,
		"workers", workers)

	var totals tally
	if needed == 0 {
		// The board is complete so every trial has the same outcome.
		h1 := slices.Concat(hands[0].Cards(), community)
		h2 := slices.Concat(hands[1].Cards(), community)
		totals.record(s.engine.Strength(h1), s.engine.Strength(h2), s.trials)
	} else {
		totals, err = s.runWorkers(ctx, hands, community, d.Cards(), workers)
		if err != nil {
			s.logger.Debug("simulation aborted", "run_id", result.RunID, "err", err)
			return nil, err
		}
	}

	result.Wins = totals.wins
	result.Ties = totals.ties
	result.Duration = s.clock.Since(start)

	p1, p2, tie := result.Percentages()
	s.logger.Debug("simulation complete",
		"run_id", result.RunID,
		"p1", p1,
		"p2", p2,
		"tie", tie,
		"duration", result.Duration)
	return result, nil
}

// runWorkers splits the trials across workers and merges their tallies
func (s *Simulator) runWorkers(ctx context.Context, hands [2]deck.Hand, community, pool []deck.Card, workers int) (tally, error) {
	seed := randutil.Seed(s.seed)
	perWorker := s.trials / workers
	remainder := s.trials % workers

	results := make([]tally, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		trials := perWorker
		if w < remainder {
			trials++
		}
		rng := randutil.New(randutil.Derive(seed, w))

		g.Go(func() error {
			t, err := s.runWorker(gctx, hands, community, pool, trials, rng)
			results[w] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return tally{}, err
	}

	var totals tally
	for _, t := range results {
		totals.wins[0] += t.wins[0]
		totals.wins[1] += t.wins[1]
		totals.ties += t.ties
	}
	return totals, nil
}

// runWorker plays trials boards using its own deck copy and buffers
func (s *Simulator) runWorker(ctx context.Context, hands [2]deck.Hand, community, pool []deck.Card, trials int, rng *rand.Rand) (tally, error) {
	var t tally
	scratch := slices.Clone(pool)

	var hand1, hand2 [7]deck.Card
	copy(hand1[:2], hands[0][:])
	copy(hand2[:2], hands[1][:])
	copy(hand1[2:], community)
	copy(hand2[2:], community)
	drawn := hand1[2+len(community):]

	for i := 0; i < trials; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return t, err
			}
		}
		sampleInto(drawn, scratch, rng)
		copy(hand2[2+len(community):], drawn)
		t.record(s.engine.Strength(hand1[:]), s.engine.Strength(hand2[:]), 1)
	}
	return t, nil
}

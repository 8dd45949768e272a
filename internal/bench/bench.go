// Package bench measures hand evaluation throughput over a reproducible
// stream of seven-card hands.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/oracle/internal/config"
	"github.com/lox/oracle/internal/logging"
	"github.com/lox/oracle/poker"
)

// ErrUnknownMode is returned for a mode other than scalar, batch or parallel.
var ErrUnknownMode = errors.New("unknown benchmark mode")

// warmupHands bounds the untimed evaluations before the first round.
const warmupHands = 10_000

// Config holds configuration for a benchmark run.
type Config struct {
	Hands     int
	Rounds    int
	Seed      uint64
	Mode      string // scalar, batch or parallel
	Workers   int    // parallel mode only; 0 means GOMAXPROCS
	Evaluator poker.HandEvaluator
	Clock     quartz.Clock
	Logger    *log.Logger
}

// Round is the outcome of one timed pass over all hands.
type Round struct {
	Index          int
	Elapsed        time.Duration
	HandsPerSecond float64
}

// Result is the outcome of a benchmark run.
type Result struct {
	Mode       string
	Hands      int
	Seed       uint64
	Started    time.Time
	Rounds     []Round
	Summary    Summary
	Checksum   uint64 // sum of all ranks from the last round
	Categories [poker.NumCategories]int
}

// Runner executes benchmark rounds.
type Runner struct {
	config Config
	hands  []poker.Hand
	sevens [][7]poker.Card
	out    []poker.HandRank
}

// New validates the configuration and generates the hand stream.
func New(cfg Config) (*Runner, error) {
	if cfg.Hands < 1 {
		return nil, fmt.Errorf("hands must be positive: %d", cfg.Hands)
	}
	if cfg.Rounds < 1 {
		cfg.Rounds = 1
	}
	switch cfg.Mode {
	case "":
		cfg.Mode = config.ModeScalar
	case config.ModeScalar, config.ModeBatch, config.ModeParallel:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = poker.NewEvaluator(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}

	hands, err := GenerateHands(cfg.Seed, cfg.Hands)
	if err != nil {
		return nil, fmt.Errorf("generating hands: %w", err)
	}
	sevens := make([][7]poker.Card, len(hands))
	for i, h := range hands {
		sevens[i], _ = h.Seven()
	}
	cfg.Logger.Debug("Generated benchmark hands", "hands", len(hands), "seed", cfg.Seed)

	return &Runner{
		config: cfg,
		hands:  hands,
		sevens: sevens,
		out:    make([]poker.HandRank, len(hands)),
	}, nil
}

// Run warms up the evaluator and then times each round.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	cfg := r.config
	res := &Result{
		Mode:    cfg.Mode,
		Hands:   len(r.hands),
		Seed:    cfg.Seed,
		Started: cfg.Clock.Now(),
	}

	for i := range min(warmupHands, len(r.sevens)) {
		_ = cfg.Evaluator.Evaluate7(r.sevens[i])
	}

	rates := make([]float64, 0, cfg.Rounds)
	for round := 1; round <= cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := cfg.Clock.Now()
		if err := r.round(ctx); err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}
		elapsed := cfg.Clock.Since(start)

		rate := 0.0
		if elapsed > 0 {
			rate = float64(len(r.hands)) / elapsed.Seconds()
		}
		res.Rounds = append(res.Rounds, Round{Index: round, Elapsed: elapsed, HandsPerSecond: rate})
		rates = append(rates, rate)
		cfg.Logger.Debug("Benchmark round complete", "round", round, "elapsed", elapsed, "hands_per_sec", int64(rate))
	}

	res.Summary = Summarize(rates)
	for _, hr := range r.out {
		res.Checksum += uint64(hr)
		res.Categories[hr.Category()]++
	}
	cfg.Logger.Info("Benchmark complete",
		"mode", cfg.Mode,
		"hands", len(r.hands),
		"rounds", cfg.Rounds,
		"mean_hands_per_sec", int64(res.Summary.Mean))
	return res, nil
}

func (r *Runner) round(ctx context.Context) error {
	ev := r.config.Evaluator
	switch r.config.Mode {
	case config.ModeBatch:
		ev.EvaluateBatch(r.hands, r.out)
	case config.ModeParallel:
		if _, err := poker.EvaluateBatchParallel(ctx, ev, r.hands, r.out, r.config.Workers); err != nil {
			return err
		}
	default:
		for i := range r.sevens {
			r.out[i] = ev.Evaluate7(r.sevens[i])
		}
	}
	return nil
}

// Run is a convenience wrapper around New and Runner.Run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	r, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}

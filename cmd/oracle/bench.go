package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lox/oracle/internal/bench"
	"github.com/lox/oracle/poker"
)

// BenchCmd measures evaluation throughput. Flags override the config file.
type BenchCmd struct {
	Hands   *int    `short:"n" help:"Number of hands per round"`
	Seed    *uint64 `short:"s" help:"LCG seed for hand generation"`
	Rounds  *int    `short:"r" help:"Number of timed rounds"`
	Mode    *string `short:"m" help:"Evaluation mode (scalar, batch or parallel)"`
	Workers *int    `short:"w" help:"Parallel workers (0 = GOMAXPROCS)"`
}

func (cmd BenchCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if cmd.Hands != nil {
		cfg.Bench.Hands = *cmd.Hands
	}
	if cmd.Seed != nil {
		cfg.Bench.Seed = int(*cmd.Seed)
	}
	if cmd.Rounds != nil {
		cfg.Bench.Rounds = *cmd.Rounds
	}
	if cmd.Mode != nil {
		cfg.Bench.Mode = *cmd.Mode
	}
	if cmd.Workers != nil {
		cfg.Bench.Workers = *cmd.Workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid benchmark settings: %w", err)
	}
	if err := poker.Init(); err != nil {
		return err
	}

	logger.Info("Starting benchmark",
		"mode", cfg.Bench.Mode,
		"hands", cfg.Bench.Hands,
		"rounds", cfg.Bench.Rounds,
		"batch_path", poker.PlatformBatch)

	res, err := bench.Run(context.Background(), bench.Config{
		Hands:   cfg.Bench.Hands,
		Rounds:  cfg.Bench.Rounds,
		Seed:    uint64(cfg.Bench.Seed),
		Mode:    cfg.Bench.Mode,
		Workers: cfg.Bench.Workers,
		Clock:   g.clockOrReal(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	out := g.stdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Benchmark: %s mode, %d hands, seed %d", res.Mode, res.Hands, res.Seed)))

	t := newTable("Round", "Elapsed", "Hands/sec")
	for _, r := range res.Rounds {
		t.Row(strconv.Itoa(r.Index), r.Elapsed.String(), formatRate(r.HandsPerSecond))
	}
	fmt.Fprintln(out, t.Render())

	s := res.Summary
	fmt.Fprintf(out, "Mean:     %s hands/sec\n", handStyle.Render(formatRate(s.Mean)))
	fmt.Fprintf(out, "Std dev:  %s (%.1f%%)\n", formatRate(s.StdDev), 100*s.CoefficientOfVariation())
	fmt.Fprintf(out, "Range:    %s .. %s\n", formatRate(s.Min), formatRate(s.Max))
	fmt.Fprintf(out, "Checksum: %d\n", res.Checksum)
	return nil
}

// formatRate renders a rate with an SI suffix, e.g. 12.34M.
func formatRate(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fG", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

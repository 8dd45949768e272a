package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lox/oracle/internal/census"
	"github.com/lox/oracle/poker"
)

// CensusCmd enumerates all five-card hands.
type CensusCmd struct {
	Workers int `short:"w" help:"Parallel workers (0 = GOMAXPROCS)"`
}

func (cmd CensusCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	tables, err := poker.BuildTables()
	if err != nil {
		return err
	}

	clock := g.clockOrReal()
	start := clock.Now()
	res, err := census.Run(context.Background(), census.Config{
		Tables:  tables,
		Workers: cmd.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("Census complete", "hands", res.Total(), "elapsed", clock.Since(start))

	t := newTable("Category", "Hands", "Expected", "Distinct ranks")
	for c := poker.NumCategories - 1; c >= 0; c-- {
		cat := poker.HandCategory(c)
		count := strconv.Itoa(res.Counts[cat])
		if res.Counts[cat] != census.KnownCounts[cat] {
			count = errorStyle.Render(count)
		}
		t.Row(categoryStyle.Render(cat.String()), count, strconv.Itoa(census.KnownCounts[cat]), strconv.Itoa(res.Distinct[cat]))
	}
	t.Row("Total", strconv.Itoa(res.Total()), strconv.Itoa(census.TotalHands), strconv.Itoa(res.DistinctRanks))

	out := g.stdout()
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "Royal flushes: %d\n", res.RoyalFlushes)

	if err := res.Check(); err != nil {
		return err
	}
	fmt.Fprintln(out, winStyle.Render("All category counts match."))
	return nil
}

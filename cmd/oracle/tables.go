package main

import (
	"fmt"
	"strconv"

	"github.com/lox/oracle/poker"
)

// TablesCmd builds fresh rank tables and reports their layout.
type TablesCmd struct{}

func (cmd TablesCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	clock := g.clockOrReal()
	start := clock.Now()
	tables, err := poker.BuildTables()
	if err != nil {
		return err
	}
	elapsed := clock.Since(start)
	logger.Debug("Built rank tables", "elapsed", elapsed)

	stats := tables.Stats()
	out := g.stdout()
	fmt.Fprintln(out, headerStyle.Render("Rank tables"))
	fmt.Fprintf(out, "Flush entries:     %d\n", stats.FlushEntries)
	fmt.Fprintf(out, "Non-flush entries: %d\n", stats.NonFlushEntries)
	fmt.Fprintf(out, "Hash slots:        %d\n", stats.HashSlots)
	fmt.Fprintf(out, "Memory:            %d bytes\n", stats.Bytes)
	fmt.Fprintf(out, "Batch path:        %s\n", poker.PlatformBatch)
	fmt.Fprintf(out, "Build time:        %s\n", elapsed)

	t := newTable("Category", "First", "Last", "Distinct")
	for c := poker.NumCategories - 1; c >= 0; c-- {
		cat := poker.HandCategory(c)
		first, last := cat.Bounds()
		t.Row(categoryStyle.Render(cat.String()), strconv.Itoa(int(first)), strconv.Itoa(int(last)), strconv.Itoa(cat.DistinctRanks()))
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

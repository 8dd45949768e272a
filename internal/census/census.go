// Package census enumerates every five-card hand and tallies the categories
// the evaluator assigns, for comparison with the known distribution.
package census

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/oracle/internal/logging"
	"github.com/lox/oracle/poker"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// TotalHands is C(52,5).
const TotalHands = 2_598_960

// KnownCounts is the number of five-card hands in each category.
var KnownCounts = [poker.NumCategories]int{
	poker.HighCard:      1_302_540,
	poker.OnePair:       1_098_240,
	poker.TwoPair:       123_552,
	poker.ThreeOfAKind:  54_912,
	poker.Straight:      10_200,
	poker.Flush:         5_108,
	poker.FullHouse:     3_744,
	poker.FourOfAKind:   624,
	poker.StraightFlush: 40,
}

// KnownRoyalFlushes is the number of royal flushes among the straight flushes.
const KnownRoyalFlushes = 4

// ErrMismatch is returned by Check when a tally differs from the known counts.
var ErrMismatch = errors.New("census mismatch")

// Config holds configuration for a census run.
type Config struct {
	Tables  *poker.RankTables // nil selects the default tables
	Workers int               // 0 means GOMAXPROCS
	Logger  *log.Logger
}

// Result holds the tallies of a census.
type Result struct {
	Counts        [poker.NumCategories]int
	Distinct      [poker.NumCategories]int // distinct ranks observed per category
	RoyalFlushes  int
	DistinctRanks int
}

// Total returns the number of hands tallied.
func (r *Result) Total() int {
	return lo.Sum(r.Counts[:])
}

type tally struct {
	counts [poker.NumCategories]int
	seen   [poker.NumHandRanks + 1]bool
	royals int
}

// Run evaluates all C(52,5) hands. Work is split by the lowest card so each
// worker enumerates a disjoint slice of the space.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	tables := cfg.Tables
	if tables == nil {
		tables = poker.DefaultTables()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make(chan *tally, poker.NumCards)

	for first := 0; first <= poker.NumCards-5; first++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := enumerateFrom(tables, poker.Card(first))
			select {
			case results <- t:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	var (
		res  Result
		seen [poker.NumHandRanks + 1]bool
	)
	for t := range results {
		for c := range res.Counts {
			res.Counts[c] += t.counts[c]
		}
		res.RoyalFlushes += t.royals
		for r, ok := range t.seen {
			seen[r] = seen[r] || ok
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for r := 1; r <= poker.NumHandRanks; r++ {
		if seen[r] {
			res.Distinct[poker.HandRank(r).Category()]++
			res.DistinctRanks++
		}
	}
	logger.Debug("Census complete", "hands", res.Total(), "distinct_ranks", res.DistinctRanks)
	return &res, nil
}

func enumerateFrom(tables *poker.RankTables, first poker.Card) *tally {
	t := &tally{}
	var cards [5]poker.Card
	cards[0] = first
	for b := first + 1; b < poker.NumCards; b++ {
		cards[1] = b
		for c := b + 1; c < poker.NumCards; c++ {
			cards[2] = c
			for d := c + 1; d < poker.NumCards; d++ {
				cards[3] = d
				for e := d + 1; e < poker.NumCards; e++ {
					cards[4] = e
					hr := tables.Evaluate5(cards)
					t.counts[hr.Category()]++
					t.seen[hr] = true
					if hr.IsRoyalFlush() {
						t.royals++
					}
				}
			}
		}
	}
	return t
}

// Check compares the result with the known distribution and returns an
// error wrapping ErrMismatch describing every difference.
func (r *Result) Check() error {
	var problems []string
	if total := r.Total(); total != TotalHands {
		problems = append(problems, fmt.Sprintf("total %d, want %d", total, TotalHands))
	}
	for c := poker.HandCategory(0); c < poker.NumCategories; c++ {
		if r.Counts[c] != KnownCounts[c] {
			problems = append(problems, fmt.Sprintf("%s: %d hands, want %d", c, r.Counts[c], KnownCounts[c]))
		}
		if want := c.DistinctRanks(); r.Distinct[c] != want {
			problems = append(problems, fmt.Sprintf("%s: %d distinct ranks, want %d", c, r.Distinct[c], want))
		}
	}
	if r.RoyalFlushes != KnownRoyalFlushes {
		problems = append(problems, fmt.Sprintf("royal flushes: %d, want %d", r.RoyalFlushes, KnownRoyalFlushes))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(problems, "; "))
	}
	return nil
}

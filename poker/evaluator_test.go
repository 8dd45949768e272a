package poker

import (
	"testing"

	"github.com/lox/oracle/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func five(t testing.TB, s string) [5]Card {
	t.Helper()
	h, err := ParseHand(s)
	require.NoError(t, err)
	cards, ok := h.Five()
	require.True(t, ok, "%s is not a five card hand", s)
	return cards
}

func seven(t testing.TB, s string) [7]Card {
	t.Helper()
	h, err := ParseHand(s)
	require.NoError(t, err)
	cards, ok := h.Seven()
	require.True(t, ok, "%s is not a seven card hand", s)
	return cards
}

func TestEvaluate5KnownRanks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		want     HandRank
		category HandCategory
	}{
		{"royal flush", "AsKsQsJsTs", 1, StraightFlush},
		{"king high straight flush", "KhQhJhTh9h", 2, StraightFlush},
		{"six high straight flush", "6s5s4s3s2s", 9, StraightFlush},
		{"steel wheel", "5s4s3s2sAs", 10, StraightFlush},
		{"four aces king", "AsAhAdAcKs", 11, FourOfAKind},
		{"four deuces three", "2c2d2h2s3c", 166, FourOfAKind},
		{"aces full of kings", "AsAhAdKsKh", 167, FullHouse},
		{"deuces full of threes", "2s2h2d3s3h", 322, FullHouse},
		{"best flush", "AsKsQsJs9s", 323, Flush},
		{"worst flush", "7s5s4s3s2s", 1599, Flush},
		{"broadway", "AhKdQcJsTh", 1600, Straight},
		{"wheel", "5h4d3c2sAh", 1609, Straight},
		{"best trips", "AsAhAdKsQh", 1610, ThreeOfAKind},
		{"worst trips", "2s2h2d4s3h", 2467, ThreeOfAKind},
		{"best two pair", "AsAhKsKhQd", 2468, TwoPair},
		{"worst two pair", "3s3h2s2h4d", 3325, TwoPair},
		{"best pair", "AsAhKsQhJd", 3326, OnePair},
		{"worst pair", "2s2h5s4h3d", 6185, OnePair},
		{"best high card", "AsKhQsJh9d", 6186, HighCard},
		{"worst high card", "7h5d4c3s2h", 7462, HighCard},
	}

	tables := DefaultTables()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tables.Evaluate5(five(t, tc.cards))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.category, got.Category())
		})
	}
}

func TestCategoryChain(t *testing.T) {
	t.Parallel()
	// Strongest first; each hand must strictly beat the next.
	chain := []string{
		"AsKsQsJsTs9h8h", // royal flush
		"KsQsJsTs9s2h3h", // straight flush
		"AsAhAdAcKs2h3d", // four of a kind
		"AsAhAdKsKh2h3d", // full house
		"AsQsTs8s6s2h3d", // flush
		"KsQhJdTc9s2h3d", // straight
		"AsAhAdKsQh2h3d", // three of a kind
		"AsAhKsKhQd2h3d", // two pair
		"AsAhKsQhJd2h3d", // one pair
		"AsKhQdJc9s5h3d", // high card
	}
	ranks := make([]HandRank, len(chain))
	for i, s := range chain {
		ranks[i] = Evaluate7(seven(t, s))
	}
	for i := 1; i < len(ranks); i++ {
		assert.Less(t, ranks[i-1], ranks[i], "%s should beat %s", chain[i-1], chain[i])
		assert.Equal(t, 1, ranks[i-1].Compare(ranks[i]))
		assert.Equal(t, -1, ranks[i].Compare(ranks[i-1]))
	}
	assert.True(t, ranks[0].IsRoyalFlush())
}

func TestFourDeucesBeatsTripsAndFullHouses(t *testing.T) {
	t.Parallel()
	quads := Evaluate5(five(t, "2c2d2h2s3c"))
	bestFullHouse, _ := FullHouse.Bounds()
	assert.Less(t, quads, bestFullHouse)
	assert.Less(t, quads, Evaluate5(five(t, "AsAhAdKsKh")))
	assert.Less(t, quads, Evaluate5(five(t, "AsAhAdKsQh")))
}

func TestEvaluate5RangeAndReferenceOrder(t *testing.T) {
	t.Parallel()
	rng := randutil.New(1)
	tables := DefaultTables()
	for i := 0; i < 50000; i++ {
		a, b := randomFive(rng), randomFive(rng)
		ra, rb := tables.Evaluate5(a), tables.Evaluate5(b)
		require.True(t, ra.Valid(), "rank %d out of range for %v", ra, a)

		want := sign(referenceScore(a) - referenceScore(b))
		require.Equal(t, want, ra.Compare(rb), "%v (%d) vs %v (%d)", a, ra, b, rb)
	}
}

func TestEvaluate7ReferenceOrder(t *testing.T) {
	t.Parallel()
	rng := randutil.New(2)
	tables := DefaultTables()
	for i := 0; i < 5000; i++ {
		a, b := randomSeven(rng), randomSeven(rng)
		want := sign(referenceScore7(a) - referenceScore7(b))
		require.Equal(t, want, tables.Evaluate7(a).Compare(tables.Evaluate7(b)))
	}
}

func TestOrderIndependence(t *testing.T) {
	t.Parallel()
	rng := randutil.New(3)
	tables := DefaultTables()
	for i := 0; i < 2000; i++ {
		c5 := randomFive(rng)
		want5 := tables.Evaluate5(c5)
		rng.Shuffle(len(c5), func(i, j int) { c5[i], c5[j] = c5[j], c5[i] })
		require.Equal(t, want5, tables.Evaluate5(c5))

		c7 := randomSeven(rng)
		want7 := tables.Evaluate7(c7)
		rng.Shuffle(len(c7), func(i, j int) { c7[i], c7[j] = c7[j], c7[i] })
		require.Equal(t, want7, tables.Evaluate7(c7))
	}
}

func TestEvaluate7IsMinimumOfSubsets(t *testing.T) {
	t.Parallel()
	rng := randutil.New(4)
	tables := DefaultTables()
	for i := 0; i < 2000; i++ {
		cards := randomSeven(rng)
		got := tables.Evaluate7(cards)

		best := HandRank(NumHandRanks + 1)
		for _, ix := range combos7 {
			r := tables.Evaluate5([5]Card{cards[ix[0]], cards[ix[1]], cards[ix[2]], cards[ix[3]], cards[ix[4]]})
			require.LessOrEqual(t, got, r)
			best = min(best, r)
		}
		require.Equal(t, best, got)
	}
}

func TestEvaluate7PrefersStraightFlushOverFlush(t *testing.T) {
	t.Parallel()
	// Seven hearts: a plain ace-high flush and a nine-high straight flush.
	cards := seven(t, "Ah9h8h7h6h5h2h")
	got := Evaluate7(cards)
	assert.Equal(t, StraightFlush, got.Category())
	assert.Equal(t, HandRank(6), got)
	assert.Less(t, got, Evaluate5(five(t, "Ah9h8h7h6h")))
}

func TestEvaluate7FlushOverStraight(t *testing.T) {
	t.Parallel()
	got := Evaluate7(seven(t, "Th9h8d7h6c2h3h"))
	assert.Equal(t, Flush, got.Category())
}

func TestEvaluateDispatchesOnSize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, HandRank(1), Evaluate(MustParseHand("AsKsQsJsTs")))
	assert.Equal(t, HandRank(164), Evaluate(MustParseHand("2c2d2h2s3c4c5c")))
	assert.Equal(t, HandRank(6), Evaluate(MustParseHand("9s8s7s6s5s4s3s")))
}

func TestEvaluateBoard(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()
	board := five(t, "AsKsQs2d3c")
	hole := [2]Card{MustCard(Jack, Spades), MustCard(Ten, Spades)}
	assert.Equal(t, HandRank(1), tables.EvaluateBoard(board, hole))
}

func TestEvaluatorImplementsCapability(t *testing.T) {
	t.Parallel()
	var e HandEvaluator = NewEvaluator(nil)
	assert.Equal(t, HandRank(7462), e.Evaluate5(five(t, "7h5d4c3s2h")))
	assert.Equal(t, HandRank(1), e.Evaluate7(seven(t, "AsKsQsJsTs9h8h")))

	hands := []Hand{MustParseHand("AsKsQsJsTs"), MustParseHand("7h5d4c3s2h")}
	assert.Equal(t, []HandRank{1, 7462}, e.EvaluateBatch(hands, nil))
}

func TestEvaluate5DoesNotAllocate(t *testing.T) {
	tables := DefaultTables()
	cards := five(t, "AhKdQcJsTh")
	flush := five(t, "AsKsQsJs9s")
	allocs := testing.AllocsPerRun(100, func() {
		_ = tables.Evaluate5(cards)
		_ = tables.Evaluate5(flush)
	})
	assert.Zero(t, allocs)
}

func BenchmarkEvaluate5(b *testing.B) {
	rng := randutil.New(42)
	hands := make([][5]Card, 1024)
	for i := range hands {
		hands[i] = randomFive(rng)
	}
	tables := DefaultTables()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tables.Evaluate5(hands[i%len(hands)])
	}
}

func BenchmarkEvaluate7(b *testing.B) {
	rng := randutil.New(42)
	hands := make([][7]Card, 1024)
	for i := range hands {
		hands[i] = randomSeven(rng)
	}
	tables := DefaultTables()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tables.Evaluate7(hands[i%len(hands)])
	}
}

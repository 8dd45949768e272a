package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryBounds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		category    HandCategory
		first, last HandRank
		distinct    int
	}{
		{StraightFlush, 1, 10, 10},
		{FourOfAKind, 11, 166, 156},
		{FullHouse, 167, 322, 156},
		{Flush, 323, 1599, 1277},
		{Straight, 1600, 1609, 10},
		{ThreeOfAKind, 1610, 2467, 858},
		{TwoPair, 2468, 3325, 858},
		{OnePair, 3326, 6185, 2860},
		{HighCard, 6186, 7462, 1277},
	}

	total := 0
	for _, tc := range tests {
		t.Run(tc.category.String(), func(t *testing.T) {
			first, last := tc.category.Bounds()
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.last, last)
			assert.Equal(t, tc.distinct, tc.category.DistinctRanks())
			assert.Equal(t, tc.category, first.Category())
			assert.Equal(t, tc.category, last.Category())
		})
		total += tc.distinct
	}
	assert.Equal(t, NumHandRanks, total)
}

func TestHandRankString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Royal Flush", HandRank(1).String())
	assert.Equal(t, "Straight Flush", HandRank(2).String())
	assert.Equal(t, "Full House", HandRank(200).String())
	assert.Equal(t, "High Card", WorstRank.String())
	assert.Equal(t, "Unknown", HandRank(0).String())
	assert.Equal(t, "Unknown", HandRank(NumHandRanks+1).String())
	assert.Equal(t, "Unknown", HandCategory(NumCategories).String())
}

func TestHandRankValidAndCompare(t *testing.T) {
	t.Parallel()
	assert.False(t, HandRank(0).Valid())
	assert.True(t, BestRank.Valid())
	assert.True(t, WorstRank.Valid())
	assert.False(t, (WorstRank + 1).Valid())

	assert.Equal(t, 1, BestRank.Compare(WorstRank))
	assert.Equal(t, -1, WorstRank.Compare(BestRank))
	assert.Equal(t, 0, HandRank(42).Compare(42))
	assert.True(t, BestRank.IsRoyalFlush())
	assert.False(t, HandRank(2).IsRoyalFlush())
}

package poker

import (
	rand "math/rand/v2"
	"sort"
)

// referenceScore ranks a 5-card hand the slow way: category first, then the
// ranks ordered by multiplicity and value. Higher scores are stronger, so it
// shares no code or ordering convention with the table evaluator.
func referenceScore(cards [5]Card) int {
	var counts [NumRanks]int
	flush := true
	for _, c := range cards {
		counts[c.Rank()]++
		if c.Suit() != cards[0].Suit() {
			flush = false
		}
	}

	type group struct{ rank, count int }
	var groups []group
	for r := NumRanks - 1; r >= 0; r-- {
		if counts[r] > 0 {
			groups = append(groups, group{r, counts[r]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].count > groups[j].count })

	straightHigh := -1
	if len(groups) == 5 {
		switch {
		case groups[0].rank-groups[4].rank == 4:
			straightHigh = groups[0].rank
		case groups[0].rank == int(Ace) && groups[1].rank == int(Five):
			straightHigh = int(Five)
		}
	}

	var category HandCategory
	switch {
	case straightHigh >= 0 && flush:
		category = StraightFlush
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		category = FullHouse
	case flush:
		category = Flush
	case straightHigh >= 0:
		category = Straight
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
	}

	score := int(category)
	if straightHigh >= 0 {
		return score<<20 | straightHigh
	}
	for _, g := range groups {
		score = score<<4 | g.rank
	}
	for i := len(groups); i < 5; i++ {
		score <<= 4
	}
	return score
}

func referenceScore7(cards [7]Card) int {
	best := -1
	for _, ix := range combos7 {
		s := referenceScore([5]Card{cards[ix[0]], cards[ix[1]], cards[ix[2]], cards[ix[3]], cards[ix[4]]})
		best = max(best, s)
	}
	return best
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func randomFive(rng *rand.Rand) [5]Card {
	perm := rng.Perm(NumCards)
	var out [5]Card
	for i := range out {
		out[i] = Card(perm[i])
	}
	return out
}

func randomSeven(rng *rand.Rand) [7]Card {
	perm := rng.Perm(NumCards)
	var out [7]Card
	for i := range out {
		out[i] = Card(perm[i])
	}
	return out
}

// randomHands returns n validated hands; every third hand has five cards.
func randomHands(rng *rand.Rand, n int) []Hand {
	hands := make([]Hand, n)
	for i := range hands {
		var err error
		if i%3 == 2 {
			c := randomFive(rng)
			hands[i], err = NewHand(c[:]...)
		} else {
			c := randomSeven(rng)
			hands[i], err = NewHand(c[:]...)
		}
		if err != nil {
			panic(err)
		}
	}
	return hands
}

package poker

// HandRank represents the strength of a poker hand. Lower values are stronger:
// 1 is a royal flush and 7462 is 7-5-4-3-2 offsuit.
type HandRank uint16

const (
	// BestRank is the rank of a royal flush.
	BestRank HandRank = 1
	// WorstRank is the rank of the weakest high card hand.
	WorstRank HandRank = NumHandRanks
	// NumHandRanks is the number of distinct hand ranks.
	NumHandRanks = 7462
)

// HandCategory enumerates the categories of poker hands ordered from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 9

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

const (
	baseStraightFlush = 1
	baseFourOfAKind   = baseStraightFlush + straightFlushCount
	baseFullHouse     = baseFourOfAKind + fourOfAKindCount
	baseFlush         = baseFullHouse + fullHouseCount
	baseStraight      = baseFlush + flushCount
	baseThreeOfAKind  = baseStraight + straightCount
	baseTwoPair       = baseThreeOfAKind + threeOfAKindCount
	baseOnePair       = baseTwoPair + twoPairCount
	baseHighCard      = baseOnePair + onePairCount
)

// categoryBounds holds [first, last] ranks per category, indexed by HandCategory.
var categoryBounds = [NumCategories][2]HandRank{
	HighCard:      {baseHighCard, baseHighCard + highCardCount - 1},
	OnePair:       {baseOnePair, baseHighCard - 1},
	TwoPair:       {baseTwoPair, baseOnePair - 1},
	ThreeOfAKind:  {baseThreeOfAKind, baseTwoPair - 1},
	Straight:      {baseStraight, baseThreeOfAKind - 1},
	Flush:         {baseFlush, baseStraight - 1},
	FullHouse:     {baseFullHouse, baseFlush - 1},
	FourOfAKind:   {baseFourOfAKind, baseFullHouse - 1},
	StraightFlush: {baseStraightFlush, baseFourOfAKind - 1},
}

// Category returns the category of hand (pair, flush, etc.).
func (hr HandRank) Category() HandCategory {
	switch {
	case hr < baseFourOfAKind:
		return StraightFlush
	case hr < baseFullHouse:
		return FourOfAKind
	case hr < baseFlush:
		return FullHouse
	case hr < baseStraight:
		return Flush
	case hr < baseThreeOfAKind:
		return Straight
	case hr < baseTwoPair:
		return ThreeOfAKind
	case hr < baseOnePair:
		return TwoPair
	case hr < baseHighCard:
		return OnePair
	default:
		return HighCard
	}
}

// Valid reports whether hr lies in [1, 7462].
func (hr HandRank) Valid() bool {
	return hr >= BestRank && hr <= WorstRank
}

// IsRoyalFlush reports whether hr is the rank of a royal flush.
func (hr HandRank) IsRoyalFlush() bool {
	return hr == BestRank
}

// Compare returns 1 if hr beats other, -1 if other beats hr, 0 for a tie.
func (hr HandRank) Compare(other HandRank) int {
	if hr < other {
		return 1
	} else if hr > other {
		return -1
	}
	return 0
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	if hr.IsRoyalFlush() {
		return "Royal Flush"
	}
	if !hr.Valid() {
		return "Unknown"
	}
	return hr.Category().String()
}

// Bounds returns the strongest and weakest rank of the category.
func (c HandCategory) Bounds() (first, last HandRank) {
	b := categoryBounds[c]
	return b[0], b[1]
}

// DistinctRanks returns how many distinct ranks the category spans.
func (c HandCategory) DistinctRanks() int {
	first, last := c.Bounds()
	return int(last-first) + 1
}

func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

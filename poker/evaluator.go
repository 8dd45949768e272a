package poker

import (
	"math/bits"
)

// HandEvaluator is the evaluation capability consumed by solver and tree code.
type HandEvaluator interface {
	Evaluate5(cards [5]Card) HandRank
	Evaluate7(cards [7]Card) HandRank
	EvaluateBatch(hands []Hand, out []HandRank) []HandRank
}

// combos7 lists the 21 five-card subsets of seven cards by index. The first
// subset is the identity on the first five cards.
var combos7 = func() [21][5]uint8 {
	var out [21][5]uint8
	n := 0
	for a := uint8(0); a < 7; a++ {
		for b := a + 1; b < 7; b++ {
			for c := b + 1; c < 7; c++ {
				for d := c + 1; d < 7; d++ {
					for e := d + 1; e < 7; e++ {
						out[n] = [5]uint8{a, b, c, d, e}
						n++
					}
				}
			}
		}
	}
	return out
}()

// Evaluate5 ranks a 5-card hand. Cards must be distinct and valid.
func (t *RankTables) Evaluate5(cards [5]Card) HandRank {
	var suits [NumSuits]uint16
	for _, c := range cards {
		suits[c.Suit()] |= c.RankBit()
	}

	// With five cards a flush can only be in the first card's suit.
	if mask := suits[cards[0].Suit()]; bits.OnesCount16(mask) >= 5 {
		return t.flushLookup(mask)
	}

	product := cards[0].Prime() * cards[1].Prime() * cards[2].Prime() *
		cards[3].Prime() * cards[4].Prime()
	return t.nonFlushLookup(product)
}

// Evaluate7 ranks the best 5-card hand among 7 cards. Cards must be distinct and valid.
func (t *RankTables) Evaluate7(cards [7]Card) HandRank {
	best := HandRank(NumHandRanks + 1)
	for i := range combos7 {
		ix := &combos7[i]
		r := t.Evaluate5([5]Card{cards[ix[0]], cards[ix[1]], cards[ix[2]], cards[ix[3]], cards[ix[4]]})
		if r < best {
			best = r
		}
	}
	return best
}

// Evaluate ranks a validated hand of 5 or 7 cards.
func (t *RankTables) Evaluate(h Hand) HandRank {
	if h.n == 5 {
		return t.Evaluate5([5]Card(h.cards[:5]))
	}
	return t.Evaluate7(h.cards)
}

// EvaluateBoard ranks two hole cards together with a five card board.
func (t *RankTables) EvaluateBoard(board [5]Card, hole [2]Card) HandRank {
	return t.Evaluate7([7]Card{board[0], board[1], board[2], board[3], board[4], hole[0], hole[1]})
}

// Evaluate5 ranks a 5-card hand using the default tables.
func Evaluate5(cards [5]Card) HandRank {
	return DefaultTables().Evaluate5(cards)
}

// Evaluate7 ranks the best 5-card hand among 7 cards using the default tables.
func Evaluate7(cards [7]Card) HandRank {
	return DefaultTables().Evaluate7(cards)
}

// Evaluate ranks a validated hand using the default tables.
func Evaluate(h Hand) HandRank {
	return DefaultTables().Evaluate(h)
}

// Evaluator pairs rank tables with the batch path compiled for this platform.
type Evaluator struct {
	*RankTables
	batch BatchEvaluator
}

var _ HandEvaluator = (*Evaluator)(nil)

// NewEvaluator returns an evaluator over t. A nil t selects DefaultTables.
func NewEvaluator(t *RankTables) *Evaluator {
	if t == nil {
		t = DefaultTables()
	}
	return &Evaluator{RankTables: t, batch: NewBatchEvaluator(t)}
}

// EvaluateBatch evaluates hands with the platform batch path.
func (e *Evaluator) EvaluateBatch(hands []Hand, out []HandRank) []HandRank {
	return e.batch.EvaluateBatch(hands, out)
}

package bench

import (
	"fmt"

	"github.com/lox/oracle/internal/randutil"
	"github.com/lox/oracle/poker"
)

// handSize is the number of cards in every generated hand.
const handSize = 7

// GenerateHands returns n seven-card hands drawn from the benchmark LCG.
// A card already present in the hand is skipped by nudging the generator,
// so the same seed always yields the same hands.
func GenerateHands(seed uint64, n int) ([]poker.Hand, error) {
	lcg := randutil.NewLCG(seed)
	hands := make([]poker.Hand, n)
	for i := range hands {
		var (
			cards [handSize]poker.Card
			set   poker.CardSet
			count int
		)
		for count < handSize {
			c := poker.Card(lcg.IntN(poker.NumCards))
			if set.Has(c) {
				lcg.Bump()
				continue
			}
			set.Add(c)
			cards[count] = c
			count++
		}
		h, err := poker.NewHand(cards[:]...)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		hands[i] = h
	}
	return hands, nil
}

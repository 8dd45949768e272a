package poker

import (
	"math/bits"
	"strings"
)

// CardSet is a bitset of cards; bit i is set when Card(i) is present.
type CardSet uint64

// NewCardSet builds a set from the given cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Add adds a card to the set.
func (cs *CardSet) Add(c Card) {
	*cs |= 1 << c
}

// Remove removes a card from the set.
func (cs *CardSet) Remove(c Card) {
	*cs &^= 1 << c
}

// Has reports whether the card is in the set.
func (cs CardSet) Has(c Card) bool {
	return cs&(1<<c) != 0
}

// Count returns the number of cards in the set.
func (cs CardSet) Count() int {
	return bits.OnesCount64(uint64(cs))
}

// SuitMask returns the 13-bit rank mask of the cards of one suit.
func (cs CardSet) SuitMask(suit Suit) uint16 {
	var mask uint16
	for r := Rank(0); r < NumRanks; r++ {
		if cs.Has(Card(r)<<2 | Card(suit)) {
			mask |= 1 << r
		}
	}
	return mask
}

// Cards returns the cards in the set in encoding order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Count())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(bits.TrailingZeros64(rest)))
	}
	return cards
}

func (cs CardSet) String() string {
	var sb strings.Builder
	for _, c := range cs.Cards() {
		sb.WriteString(c.String())
	}
	return sb.String()
}

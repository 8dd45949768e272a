package poker

import (
	rand "math/rand/v2"
	"slices"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards [NumCards]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: FullDeck(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := slices.Clone(d.cards[d.next : d.next+n])
	d.next += n
	return cards
}

// DealHand shuffles and deals a fresh hand of n cards (5 or 7).
func (d *Deck) DealHand(n int) (Hand, error) {
	d.Shuffle()
	return NewHand(d.Deal(n)...)
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

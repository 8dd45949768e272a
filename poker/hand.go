package poker

import (
	"fmt"
	"strings"
)

// Hand is a validated evaluation input: exactly 5 or 7 distinct cards.
// The zero value is not a valid hand; build hands with NewHand or ParseHand.
type Hand struct {
	cards [7]Card
	n     uint8
}

// NewHand validates cards and returns a hand. It fails when the count is not
// 5 or 7, when a card is out of range, or when a card repeats.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != 5 && len(cards) != 7 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	var h Hand
	var seen CardSet
	for i, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: value %d at position %d", ErrInvalidCard, c, i)
		}
		if seen.Has(c) {
			return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Add(c)
		h.cards[i] = c
	}
	h.n = uint8(len(cards))
	return h, nil
}

// ParseHand parses card notation into a hand, e.g. "AsKsQsJsTs".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand is like ParseHand but panics on error.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Len returns the number of cards, 5 or 7.
func (h Hand) Len() int {
	return int(h.n)
}

// Cards returns a copy of the hand's cards.
func (h Hand) Cards() []Card {
	out := make([]Card, h.n)
	copy(out, h.cards[:h.n])
	return out
}

// Five returns the cards of a 5-card hand. ok is false for 7-card hands.
func (h Hand) Five() (cards [5]Card, ok bool) {
	if h.n != 5 {
		return cards, false
	}
	copy(cards[:], h.cards[:5])
	return cards, true
}

// Seven returns the cards of a 7-card hand. ok is false for 5-card hands.
func (h Hand) Seven() (cards [7]Card, ok bool) {
	if h.n != 7 {
		return cards, false
	}
	return h.cards, true
}

// Set returns the hand's cards as a CardSet.
func (h Hand) Set() CardSet {
	return NewCardSet(h.cards[:h.n]...)
}

func (h Hand) String() string {
	var sb strings.Builder
	for i := uint8(0); i < h.n; i++ {
		sb.WriteString(h.cards[i].String())
	}
	return sb.String()
}

package poker

import (
	"fmt"
	"strings"
)

// Rank is a card face value, Two (0) through Ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct card ranks.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// String returns the single character notation for the rank.
func (r Rank) String() string {
	if r >= NumRanks {
		return "?"
	}
	return rankChars[r : r+1]
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of distinct card suits.
const NumSuits = 4

const suitChars = "cdhs"

// String returns the single character notation for the suit.
func (s Suit) String() string {
	if s >= NumSuits {
		return "?"
	}
	return suitChars[s : s+1]
}

// Symbol returns the unicode symbol for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card is a compact card encoding: rank<<2 | suit.
// Valid cards are the 52 values 0..51.
type Card uint8

// NumCards is the number of cards in a standard deck.
const NumCards = 52

// rankPrimes assigns a distinct prime to each rank, Two..Ace. The product of
// the primes of a hand's ranks identifies its rank multiset uniquely.
var rankPrimes = [NumRanks]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// NewCard creates a card from a rank and a suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank >= NumRanks {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if suit >= NumSuits {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	return Card(rank)<<2 | Card(suit), nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c >> 2)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c & 3)
}

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool {
	return c < NumCards
}

// Prime returns the prime assigned to the card's rank.
func (c Card) Prime() uint32 {
	return rankPrimes[c>>2]
}

// RankBit returns the card's rank as a single bit of a 13-bit rank mask.
func (c Card) RankBit() uint16 {
	return 1 << (c >> 2)
}

// String returns the card in two character notation, e.g. "As".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses a card in two character notation such as "As" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be two characters", ErrInvalidCard, s)
	}
	rank, err := parseRank(s[0])
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", s, err)
	}
	return NewCard(rank, suit)
}

// ParseCards parses a sequence of cards, e.g. "AsKsQsJsTs" or "As Ks Qs".
// Whitespace between cards is ignored.
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is odd", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i/2, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '2'), nil
	}
	return 0, fmt.Errorf("%w: '%c'", ErrInvalidRank, c)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: '%c'", ErrInvalidSuit, c)
	}
}

// FullDeck returns all 52 cards in encoding order.
func FullDeck() [NumCards]Card {
	var cards [NumCards]Card
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

package poker

import "errors"

var (
	// ErrInvalidRank is returned for a rank outside Two..Ace.
	ErrInvalidRank = errors.New("invalid rank")
	// ErrInvalidSuit is returned for a suit outside the four suits.
	ErrInvalidSuit = errors.New("invalid suit")
	// ErrInvalidCard is returned for a card value or notation that does not
	// name one of the 52 cards.
	ErrInvalidCard = errors.New("invalid card")
	// ErrDuplicateCard is returned when a hand holds the same card twice.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrHandSize is returned when a hand has neither 5 nor 7 cards.
	ErrHandSize = errors.New("hand must contain 5 or 7 cards")
	// ErrTableCorrupt signals that the rank tables do not cover a legal hand.
	ErrTableCorrupt = errors.New("rank table corrupt")
)

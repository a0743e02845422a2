package card

import "strconv"

// Suit is one of the four French suits
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits returns the suits in deal order (♠ ♥ ♦ ♣)
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// IsRed reports whether the suit is hearts or diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is a card rank, Ace through King
type Rank int

const (
	Ace Rank = iota + 1
	Two
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
)

// Ranks returns the ranks in ascending order (A..K)
func Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// String returns the rank label (A, 2..10, J, Q, K)
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Color names used by Card.Color
const (
	Red   = "red"
	Black = "black"
)

// HiddenLabel is what a face-down card prints as
const HiddenLabel = "[?]"

// Card represents a playing card
type Card struct {
	Suit    Suit
	Rank    Rank
	Visible bool // Face-up when true
}

// New creates a card with the given visibility
func New(suit Suit, rank Rank, visible bool) *Card {
	return &Card{Suit: suit, Rank: rank, Visible: visible}
}

// Flip turns the card over
func (c *Card) Flip() {
	c.Visible = !c.Visible
}

// Value returns the numeric value of the rank (A=1 ... K=13)
func (c *Card) Value() int {
	return int(c.Rank)
}

// Color returns "red" for hearts and diamonds, "black" otherwise
func (c *Card) Color() string {
	if c.Suit.IsRed() {
		return Red
	}
	return Black
}

// Label returns rank and suit regardless of visibility (e.g. "10♥")
func (c *Card) Label() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the label for face-up cards and HiddenLabel for face-down ones
func (c *Card) String() string {
	if c == nil {
		return ""
	}
	if !c.Visible {
		return HiddenLabel
	}
	return c.Label()
}

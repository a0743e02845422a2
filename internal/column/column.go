package column

import (
	"github.com/arcanaland/klondike/internal/card"
)

// Column is one tableau pile; the last card is the top
type Column struct {
	cards []*card.Card
}

// New creates an empty column
func New() *Column {
	return &Column{}
}

// AddCard puts a card on top of the column
func (c *Column) AddCard(cd *card.Card) {
	c.cards = append(c.cards, cd)
}

// Cards returns the cards in display order (bottom first)
func (c *Column) Cards() []*card.Card {
	return c.cards
}

// Len returns the number of cards in the column
func (c *Column) Len() int {
	return len(c.cards)
}

// FinalColumn is a foundation pile for a single suit
type FinalColumn struct {
	Suit  card.Suit
	cards []*card.Card
}

// NewFinal creates an empty foundation for the suit
func NewFinal(suit card.Suit) *FinalColumn {
	return &FinalColumn{Suit: suit}
}

// AddCard puts a card on top of the foundation
func (f *FinalColumn) AddCard(cd *card.Card) {
	f.cards = append(f.cards, cd)
}

// Show returns the foundation's cards, or false when the foundation is empty
func (f *FinalColumn) Show() ([]*card.Card, bool) {
	if len(f.cards) == 0 {
		return nil, false
	}
	return f.cards, true
}

// Len returns the number of cards on the foundation
func (f *FinalColumn) Len() int {
	return len(f.cards)
}

package column

import (
	"errors"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
)

var (
	ErrNoCards        = errors.New("no cards left to draw")
	ErrCardsRemaining = errors.New("cards remain in the draw pile")
	ErrNothingDrawn   = errors.New("no drawn cards to reshuffle")
)

// DrawColumn is the stock: face-down undrawn cards, the current face-up card
// and the cards drawn before it
type DrawColumn struct {
	cards   []*card.Card // undrawn, index 0 is drawn next
	drawn   []*card.Card // oldest first
	current *card.Card
}

// NewDraw creates a draw pile that takes ownership of cards
func NewDraw(cards []*card.Card) *DrawColumn {
	return &DrawColumn{cards: cards}
}

// CurrentCard returns the face-up card, or nil when none has been drawn
func (d *DrawColumn) CurrentCard() *card.Card {
	return d.current
}

// Cards returns the undrawn cards
func (d *DrawColumn) Cards() []*card.Card {
	return d.cards
}

// DrawnCards returns the cards drawn before the current one
func (d *DrawColumn) DrawnCards() []*card.Card {
	return d.drawn
}

// Next moves the current card to the drawn list and turns up the next undrawn card.
// On an exhausted pile the current card is still set aside, leaving the pile
// ready for Reshuffle, and ErrNoCards is returned.
func (d *DrawColumn) Next() (*card.Card, error) {
	if d.current != nil {
		d.drawn = append(d.drawn, d.current)
		d.current = nil
	}
	if len(d.cards) == 0 {
		return nil, ErrNoCards
	}

	next := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	if !next.Visible {
		next.Flip()
	}
	d.current = next
	return next, nil
}

// Reshuffle turns every drawn card (current included) face-down, shuffles them
// and makes them the undrawn pile again. Only allowed once the pile is exhausted.
func (d *DrawColumn) Reshuffle(r deck.Shuffler) error {
	if len(d.cards) > 0 {
		return ErrCardsRemaining
	}
	if d.current == nil && len(d.drawn) == 0 {
		return ErrNothingDrawn
	}

	pile := d.drawn
	if d.current != nil {
		pile = append(pile, d.current)
	}
	for _, c := range pile {
		if c.Visible {
			c.Flip()
		}
	}
	r.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})

	d.cards = pile
	d.drawn = nil
	d.current = nil
	return nil
}

// Len returns the number of cards held in any state
func (d *DrawColumn) Len() int {
	n := len(d.cards) + len(d.drawn)
	if d.current != nil {
		n++
	}
	return n
}

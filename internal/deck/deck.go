package deck

import (
	"errors"

	"github.com/arcanaland/klondike/internal/card"
)

// ErrEmpty is returned when drawing from a deck with no cards left
var ErrEmpty = errors.New("deck is empty")

// Size is the number of cards in a standard deck
const Size = 52

// Shuffler permutes n elements through swap. *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is an ordered pile of cards; index 0 is the top
type Deck struct {
	cards []*card.Card
}

// New creates a deck holding the given cards in order
func New(cards []*card.Card) *Deck {
	return &Deck{cards: cards}
}

// NewStandard creates the 52-card deck, suit-major and rank-minor, all face-down
func NewStandard() *Deck {
	cards := make([]*card.Card, 0, Size)
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			cards = append(cards, card.New(suit, rank, false))
		}
	}
	return New(cards)
}

// Shuffle applies one random permutation to the remaining cards
func (d *Deck) Shuffle(r Shuffler) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// GetCard removes and returns the top card
func (d *Deck) GetCard() (*card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmpty
	}
	top := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return top, nil
}

// Cards returns the remaining cards, top first. The slice must not be modified.
func (d *Deck) Cards() []*card.Card {
	return d.cards
}

// Len returns the number of remaining cards
func (d *Deck) Len() int {
	return len(d.cards)
}

// TakeAll removes every remaining card from the deck and returns them in order
func (d *Deck) TakeAll() []*card.Card {
	rest := d.cards
	d.cards = nil
	return rest
}

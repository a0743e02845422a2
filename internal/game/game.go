package game

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/column"
	"github.com/arcanaland/klondike/internal/deck"
)

const (
	// NumColumns is the number of tableau columns
	NumColumns = 7

	DefaultMinShuffles = 1
	DefaultMaxShuffles = 7
)

// Randomizer is the source of randomness used during setup.
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Options controls game setup
type Options struct {
	Rand        Randomizer
	MinShuffles int
	MaxShuffles int
}

// State is a complete game: the (emptied) deck, tableau, foundations and draw pile
type State struct {
	Deck         *deck.Deck
	Columns      []*column.Column
	FinalColumns []*column.FinalColumn
	DrawColumn   *column.DrawColumn
}

// Setup builds a new game: create the deck, shuffle it a random number of
// times, deal the tableau, create the foundations and wrap the rest into the draw pile.
func Setup(opts Options) (*State, error) {
	if opts.Rand == nil {
		return nil, fmt.Errorf("setup requires a random source")
	}
	if opts.MinShuffles < 1 || opts.MaxShuffles < opts.MinShuffles {
		return nil, fmt.Errorf("invalid shuffle range [%d, %d]", opts.MinShuffles, opts.MaxShuffles)
	}

	d := deck.NewStandard()
	rounds := opts.MinShuffles + opts.Rand.IntN(opts.MaxShuffles-opts.MinShuffles+1)
	for i := 0; i < rounds; i++ {
		d.Shuffle(opts.Rand)
	}

	columns := NewColumns()
	if err := DealColumns(d, columns); err != nil {
		return nil, fmt.Errorf("error dealing tableau: %w", err)
	}

	return &State{
		Deck:         d,
		Columns:      columns,
		FinalColumns: NewFinalColumns(),
		DrawColumn:   NewDrawColumn(d),
	}, nil
}

// NewColumns creates the empty tableau
func NewColumns() []*column.Column {
	columns := make([]*column.Column, NumColumns)
	for i := range columns {
		columns[i] = column.New()
	}
	return columns
}

// DealColumns deals the tableau from the top of the deck: column i gets
// i face-down cards and then one face-up card.
func DealColumns(d *deck.Deck, columns []*column.Column) error {
	if len(columns) < NumColumns {
		return fmt.Errorf("need %d columns, got %d", NumColumns, len(columns))
	}

	for i := 0; i < NumColumns; i++ {
		for j := 0; j < i; j++ {
			c, err := d.GetCard()
			if err != nil {
				return fmt.Errorf("column %d: %w", i+1, err)
			}
			columns[i].AddCard(c)
		}

		c, err := d.GetCard()
		if err != nil {
			return fmt.Errorf("column %d: %w", i+1, err)
		}
		c.Flip()
		columns[i].AddCard(c)
	}
	return nil
}

// NewFinalColumns creates one empty foundation per suit, in suit order
func NewFinalColumns() []*column.FinalColumn {
	suits := card.Suits()
	finals := make([]*column.FinalColumn, 0, len(suits))
	for _, s := range suits {
		finals = append(finals, column.NewFinal(s))
	}
	return finals
}

// NewDrawColumn moves whatever is left in the deck into a draw pile
func NewDrawColumn(d *deck.Deck) *column.DrawColumn {
	return column.NewDraw(d.TakeAll())
}

// Cards returns every card held by the game, in no particular order
func (s *State) Cards() []*card.Card {
	var all []*card.Card
	all = append(all, s.Deck.Cards()...)
	for _, col := range s.Columns {
		all = append(all, col.Cards()...)
	}
	for _, f := range s.FinalColumns {
		if cards, ok := f.Show(); ok {
			all = append(all, cards...)
		}
	}
	all = append(all, s.DrawColumn.Cards()...)
	all = append(all, s.DrawColumn.DrawnCards()...)
	if cur := s.DrawColumn.CurrentCard(); cur != nil {
		all = append(all, cur)
	}
	return all
}

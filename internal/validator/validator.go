package validator

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/game"
)

// drawPileSize is what remains for the draw pile after dealing 1+2+...+7 cards
const drawPileSize = deck.Size - game.NumColumns*(game.NumColumns+1)/2

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	State   *game.State
	Results ValidationResults
}

func NewValidator(st *game.State) *Validator {
	return &Validator{
		State:   st,
		Results: ValidationResults{},
	}
}

// Validate checks a freshly dealt game
func (v *Validator) Validate() (ValidationResults, error) {
	if v.State == nil {
		return v.Results, fmt.Errorf("no game state to validate")
	}
	if v.State.Deck == nil || v.State.DrawColumn == nil {
		return v.Results, fmt.Errorf("game state is incomplete")
	}

	v.validateCards()
	v.validateColumns()
	v.validateFinalColumns()
	v.validateDrawColumn()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateCards checks that every card of the standard deck is held exactly once
func (v *Validator) validateCards() {
	counts := make(map[string]int)
	for _, c := range v.State.Cards() {
		counts[c.Label()]++
	}

	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			label := rank.String() + suit.String()
			switch n := counts[label]; {
			case n == 0:
				v.errorf("card %s is missing", label)
			case n > 1:
				v.errorf("card %s appears %d times", label, n)
			}
			delete(counts, label)
		}
	}

	for label := range counts {
		v.errorf("unexpected card %s", label)
	}

	if n := v.State.Deck.Len(); n > 0 {
		v.errorf("deck still holds %d cards after setup", n)
	}
}

// validateColumns checks the tableau: column i holds i+1 cards, only the top one face-up
func (v *Validator) validateColumns() {
	if len(v.State.Columns) != game.NumColumns {
		v.errorf("expected %d columns, found %d", game.NumColumns, len(v.State.Columns))
		return
	}

	for i, col := range v.State.Columns {
		cards := col.Cards()
		if len(cards) != i+1 {
			v.errorf("column %d has %d cards, expected %d", i+1, len(cards), i+1)
		}
		for j, c := range cards {
			top := j == len(cards)-1
			if top && !c.Visible {
				v.errorf("column %d: top card is face-down", i+1)
			}
			if !top && c.Visible {
				v.errorf("column %d: card %d is face-up", i+1, j+1)
			}
		}
	}
}

// validateFinalColumns checks there is one empty foundation per suit, in suit order
func (v *Validator) validateFinalColumns() {
	suits := card.Suits()
	if len(v.State.FinalColumns) != len(suits) {
		v.errorf("expected %d final columns, found %d", len(suits), len(v.State.FinalColumns))
		return
	}

	for i, f := range v.State.FinalColumns {
		if f.Suit != suits[i] {
			v.errorf("final column %d is %s, expected %s", i+1, f.Suit, suits[i])
		}
		if f.Len() > 0 {
			v.errorf("final column %s is not empty", f.Suit)
		}
	}
}

// validateDrawColumn checks the draw pile holds the rest of the deck face-down
func (v *Validator) validateDrawColumn() {
	dc := v.State.DrawColumn

	if n := len(dc.Cards()); n != drawPileSize {
		v.errorf("draw pile has %d cards, expected %d", n, drawPileSize)
	}
	for _, c := range dc.Cards() {
		if c.Visible {
			v.errorf("draw pile card %s is face-up", c.Label())
		}
	}

	if n := len(dc.DrawnCards()); n > 0 {
		v.warnf("%d cards have already been drawn", n)
	}
	if c := dc.CurrentCard(); c != nil {
		v.warnf("draw pile already shows %s", c.Label())
	}
}

package render

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/column"
	"github.com/arcanaland/klondike/internal/deck"
	"github.com/arcanaland/klondike/internal/game"
)

const emptyLabel = "Empty"

// Draw pile messages, in the order they are checked
const (
	MsgNextCard  = "No current card. Type 'next' to draw the next card."
	MsgReshuffle = "No cards left in deck. Type 'reshuffle' to mix drawn cards and start drawing again."
	MsgEmptyPile = "Empty Column"
)

// Printer writes game state as text, coloring face-up cards by suit
type Printer struct {
	w    io.Writer
	red  *colorize.Color // ♥ ♦
	cyan *colorize.Color // ♠ ♣
}

// NewPrinter creates a printer; with useColor false everything is plain text
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:    w,
		red:  colorize.New(colorize.FgHiRed),
		cyan: colorize.New(colorize.FgHiCyan),
	}
	if useColor {
		p.red.EnableColor()
		p.cyan.EnableColor()
	} else {
		p.red.DisableColor()
		p.cyan.DisableColor()
	}
	return p
}

// paint returns the palette entry for a suit
func (p *Printer) paint(s card.Suit) *colorize.Color {
	if s.IsRed() {
		return p.red
	}
	return p.cyan
}

// SuitString returns the suit symbol in its color
func (p *Printer) SuitString(s card.Suit) string {
	return p.paint(s).Sprint(s.String())
}

// CardString colors a face-up card by suit; face-down cards keep their plain form
func (p *Printer) CardString(c *card.Card) string {
	if c == nil || !c.Visible {
		return c.String()
	}
	return p.paint(c.Suit).Sprint(c.String())
}

func (p *Printer) cardList(cards []*card.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, p.CardString(c))
	}
	return strings.Join(parts, ", ")
}

// PrintDeck lists every card with its value, color and rank, as if face-up
func (p *Printer) PrintDeck(d *deck.Deck) {
	for _, c := range d.Cards() {
		fmt.Fprintf(p.w, "%s - Value: %d, Color: %s, Rank: %s\n",
			p.paint(c.Suit).Sprint(c.Label()), c.Value(), c.Color(), c.Rank)
	}
}

// PrintColumns prints one line per tableau column
func (p *Printer) PrintColumns(columns []*column.Column) {
	for i, col := range columns {
		cards := emptyLabel
		if col.Len() > 0 {
			cards = p.cardList(col.Cards())
		}
		fmt.Fprintf(p.w, "Column %d: %s\n", i+1, cards)
	}
}

// PrintFinalColumns prints one line per foundation
func (p *Printer) PrintFinalColumns(finals []*column.FinalColumn) {
	for _, f := range finals {
		cards := emptyLabel
		if shown, ok := f.Show(); ok {
			cards = p.cardList(shown)
		}
		fmt.Fprintf(p.w, "Final Column %s: %s\n", p.SuitString(f.Suit), cards)
	}
}

// DrawPileLine describes the draw pile: the current card if there is one,
// otherwise a hint for what the player can do next
func (p *Printer) DrawPileLine(dc *column.DrawColumn) string {
	switch {
	case dc.CurrentCard() != nil:
		return p.CardString(dc.CurrentCard())
	case len(dc.Cards()) > 0:
		return MsgNextCard
	case len(dc.DrawnCards()) > 0:
		return MsgReshuffle
	default:
		return MsgEmptyPile
	}
}

// PrintGameState prints the tableau, the foundations and the draw pile
func (p *Printer) PrintGameState(st *game.State) {
	fmt.Fprintln(p.w, "Columns:")
	p.PrintColumns(st.Columns)

	fmt.Fprintln(p.w, "\nFinal Columns:")
	p.PrintFinalColumns(st.FinalColumns)

	fmt.Fprintln(p.w, "\nDrawn Cards:")
	fmt.Fprintln(p.w, p.DrawPileLine(st.DrawColumn))
}

package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/column"
	"github.com/arcanaland/klondike/internal/deck"
)

// fixedRand never permutes and always picks the smallest value
type fixedRand struct {
	shuffles int
}

func (*fixedRand) IntN(int) int { return 0 }

func (f *fixedRand) Shuffle(int, func(i, j int)) { f.shuffles++ }

func defaultOptions(r Randomizer) Options {
	return Options{Rand: r, MinShuffles: DefaultMinShuffles, MaxShuffles: DefaultMaxShuffles}
}

func TestSetup_IdentityShuffle(t *testing.T) {
	r := &fixedRand{}
	st, err := Setup(defaultOptions(r))
	require.NoError(t, err)
	assert.Equal(t, 1, r.shuffles)

	reference := deck.NewStandard().Cards()

	require.Len(t, st.Columns, NumColumns)
	assert.Equal(t, 1, st.Columns[0].Len())
	assert.True(t, st.Columns[0].Cards()[0].Visible)
	assert.Equal(t, "A♠", st.Columns[0].Cards()[0].Label())

	last := st.Columns[6].Cards()
	require.Len(t, last, 7)
	for _, c := range last[:6] {
		assert.False(t, c.Visible)
	}
	assert.True(t, last[6].Visible)

	// 1+2+...+6 = 21 cards precede column 7
	assert.Equal(t, reference[21].Label(), last[0].Label())

	pile := st.DrawColumn.Cards()
	require.Len(t, pile, 24)
	for i, c := range pile {
		assert.Equal(t, reference[28+i].Label(), c.Label(), "draw pile position %d", i)
		assert.False(t, c.Visible)
	}
	assert.Empty(t, st.DrawColumn.DrawnCards())
	assert.Nil(t, st.DrawColumn.CurrentCard())
	assert.Zero(t, st.Deck.Len())
}

func TestSetup_ShuffleRounds(t *testing.T) {
	r := &fixedRand{}
	_, err := Setup(Options{Rand: r, MinShuffles: 3, MaxShuffles: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, r.shuffles)
}

func TestSetup_InvalidOptions(t *testing.T) {
	_, err := Setup(Options{MinShuffles: 1, MaxShuffles: 7})
	assert.Error(t, err)

	_, err = Setup(Options{Rand: &fixedRand{}, MinShuffles: 0, MaxShuffles: 7})
	assert.Error(t, err)

	_, err = Setup(Options{Rand: &fixedRand{}, MinShuffles: 5, MaxShuffles: 2})
	assert.Error(t, err)
}

func TestSetup_EveryCardOnce(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		st, err := Setup(defaultOptions(rand.New(rand.NewPCG(seed, seed))))
		require.NoError(t, err)

		all := st.Cards()
		require.Len(t, all, deck.Size, "seed %d", seed)

		seen := make(map[string]bool)
		for _, c := range all {
			assert.False(t, seen[c.Label()], "seed %d: duplicate %s", seed, c.Label())
			seen[c.Label()] = true
		}

		for i, col := range st.Columns {
			cards := col.Cards()
			require.Len(t, cards, i+1)
			for j, c := range cards {
				assert.Equal(t, j == i, c.Visible, "seed %d column %d card %d", seed, i, j)
			}
		}
		assert.Len(t, st.DrawColumn.Cards(), 24)
	}
}

func TestSetup_Deterministic(t *testing.T) {
	a, err := Setup(defaultOptions(rand.New(rand.NewPCG(42, 0))))
	require.NoError(t, err)
	b, err := Setup(defaultOptions(rand.New(rand.NewPCG(42, 0))))
	require.NoError(t, err)

	for i := range a.Columns {
		for j := range a.Columns[i].Cards() {
			assert.Equal(t, a.Columns[i].Cards()[j].Label(), b.Columns[i].Cards()[j].Label())
		}
	}
	for i := range a.DrawColumn.Cards() {
		assert.Equal(t, a.DrawColumn.Cards()[i].Label(), b.DrawColumn.Cards()[i].Label())
	}
}

func TestDealColumns_ShortDeck(t *testing.T) {
	d := deck.New([]*card.Card{card.New(card.Spades, card.Ace, false)})
	err := DealColumns(d, NewColumns())
	assert.ErrorIs(t, err, deck.ErrEmpty)
}

func TestDealColumns_TooFewColumns(t *testing.T) {
	err := DealColumns(deck.NewStandard(), []*column.Column{column.New()})
	assert.Error(t, err)
}

func TestNewFinalColumns(t *testing.T) {
	finals := NewFinalColumns()
	require.Len(t, finals, 4)
	for i, s := range card.Suits() {
		assert.Equal(t, s, finals[i].Suit)
		_, ok := finals[i].Show()
		assert.False(t, ok)
	}
}

func TestNewDrawColumn(t *testing.T) {
	d := deck.NewStandard()
	dc := NewDrawColumn(d)
	assert.Len(t, dc.Cards(), deck.Size)
	assert.Zero(t, d.Len(), "deck no longer holds the cards")
}

func TestState_CardsIncludesFoundations(t *testing.T) {
	st, err := Setup(defaultOptions(&fixedRand{}))
	require.NoError(t, err)

	extra := card.New(card.Hearts, card.Ace, true)
	st.FinalColumns[1].AddCard(extra)

	shown, ok := st.FinalColumns[1].Show()
	require.True(t, ok)
	require.Len(t, shown, 1)
	assert.Same(t, extra, shown[0])

	all := st.Cards()
	assert.Len(t, all, deck.Size+1)

	found := false
	for _, c := range all {
		if c == extra {
			found = true
		}
	}
	assert.True(t, found, "foundation cards are listed")
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/deck"
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List the cards of a standard deck",
	Long: `Deck prints every card of a standard 52-card deck with its value, color and rank.
By default the cards are listed in suit order (♠ ♥ ♦ ♣, A to K).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		d := deck.NewStandard()
		if shuffled, _ := cmd.Flags().GetBool("shuffled"); shuffled {
			d.Shuffle(newRand(cfg))
		}

		newPrinter(cmd, cfg).PrintDeck(d)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().BoolP("shuffled", "s", false, "Shuffle the deck before listing it")
}

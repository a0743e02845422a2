package cmd

import (
	"github.com/spf13/cobra"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a new game and print it",
	Long: `Deal shuffles a fresh deck, deals the seven tableau columns, sets up the
four foundations and the draw pile, and prints the resulting game.

Examples:
  klondike deal
  klondike deal --seed 42 --color never`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		st, err := newGame(cfg, newRand(cfg))
		if err != nil {
			return err
		}

		newPrinter(cmd, cfg).PrintGameState(st)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
}

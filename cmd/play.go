package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/column"
)

const playHelp = `Commands:
  next       draw the next card from the draw pile
  reshuffle  turn the drawn cards back into the draw pile
  show       print the game again
  help       show this help
  quit       leave the game`

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Deal a game and work through the draw pile interactively",
	Long: `Play deals a new game and reads commands from standard input.

` + playHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		r := newRand(cfg)
		st, err := newGame(cfg, r)
		if err != nil {
			return err
		}

		p := newPrinter(cmd, cfg)
		p.PrintGameState(st)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			printf(cmd, "\n> ")
			if !scanner.Scan() {
				printf(cmd, "\n")
				return scanner.Err()
			}

			switch input := strings.ToLower(strings.TrimSpace(scanner.Text())); input {
			case "":
				continue
			case "next", "n":
				if _, err := st.DrawColumn.Next(); err != nil {
					printf(cmd, "%s\n", drawError(err))
					if !errors.Is(err, column.ErrNoCards) {
						continue
					}
				}
				p.PrintGameState(st)
			case "reshuffle", "r":
				if err := st.DrawColumn.Reshuffle(r); err != nil {
					printf(cmd, "%s\n", drawError(err))
					continue
				}
				p.PrintGameState(st)
			case "show", "s":
				p.PrintGameState(st)
			case "help", "h", "?":
				printf(cmd, "%s\n", playHelp)
			case "quit", "exit", "q":
				return nil
			default:
				printf(cmd, "Unknown command %q. Type 'help' for a list of commands.\n", input)
			}
		}
	},
}

// drawError turns a draw pile error into a hint for the player
func drawError(err error) string {
	switch {
	case errors.Is(err, column.ErrNoCards):
		return "No cards left to draw. Type 'reshuffle' to start again."
	case errors.Is(err, column.ErrCardsRemaining):
		return "There are still cards to draw. Type 'next'."
	case errors.Is(err, column.ErrNothingDrawn):
		return "The draw pile is empty."
	}
	return fmt.Sprintf("Error: %v", err)
}

func init() {
	RootCmd.AddCommand(playCmd)
}

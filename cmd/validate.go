package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Deal games and check them for setup errors",
	Long: `Validate deals one or more games and checks that each one is set up correctly:
every card is present exactly once, column N holds N cards with only the top one
face-up, the foundations are empty and the draw pile holds the remaining 24 cards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		games, _ := cmd.Flags().GetInt("games")
		if games < 1 {
			return fmt.Errorf("--games must be at least 1, got %d", games)
		}

		printf(cmd, "Validation Results:\n")
		printf(cmd, "-------------------\n")

		r := newRand(cfg)
		failed := 0
		for g := 1; g <= games; g++ {
			st, err := newGame(cfg, r)
			if err != nil {
				return fmt.Errorf("game %d: setup error: %w", g, err)
			}

			results, err := validator.NewValidator(st).Validate()
			if err != nil {
				return fmt.Errorf("game %d: validation error: %w", g, err)
			}

			if len(results.Errors) > 0 {
				failed++
				printf(cmd, "❌ Game %d has %d validation errors:\n", g, len(results.Errors))
				for i, e := range results.Errors {
					printf(cmd, "%d. %s\n", i+1, e)
				}
			}

			if len(results.Warnings) > 0 {
				printf(cmd, "\nWarnings for game %d:\n", g)
				for i, warn := range results.Warnings {
					printf(cmd, "%d. %s\n", i+1, warn)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("validation failed for %d of %d games", failed, games)
		}

		printf(cmd, "✅ %d games dealt correctly.\n", games)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().IntP("games", "n", 1, "Number of games to deal and check")
}

package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/config"
	"github.com/arcanaland/klondike/internal/game"
	"github.com/arcanaland/klondike/internal/render"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Solitaire in your terminal",
	Long: `Klondike deals a game of Solitaire: seven tableau columns, four foundations
and a draw pile, printed to the terminal with colored suits.

Settings are read from $XDG_CONFIG_HOME/klondike/config.toml and can be
overridden with flags.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().Uint64("seed", 0, "Seed for shuffling (0 picks one from the clock)")
	RootCmd.PersistentFlags().String("color", "", "Color output: auto, always or never")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadSettings reads the config file and applies flag overrides
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("color") {
		cfg.Color, _ = cmd.Flags().GetString("color")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRand returns a source seeded from cfg, or from the clock when the seed is 0
func newRand(cfg *config.Config) *rand.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// newGame deals a game using the configured shuffle range
func newGame(cfg *config.Config, r *rand.Rand) (*game.State, error) {
	return game.Setup(game.Options{
		Rand:        r,
		MinShuffles: cfg.MinShuffles,
		MaxShuffles: cfg.MaxShuffles,
	})
}

// newPrinter creates a printer for the command's output, coloring per cfg.Color
func newPrinter(cmd *cobra.Command, cfg *config.Config) *render.Printer {
	out := cmd.OutOrStdout()
	return render.NewPrinter(out, useColor(cfg.Color, out))
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// printf writes to the command's output
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

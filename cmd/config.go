package cmd

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the klondike configuration file",
	Long:  `Commands for creating and inspecting the klondike configuration file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if force, _ := cmd.Flags().GetBool("force"); force {
			if err := config.SaveConfig(config.Default()); err != nil {
				return err
			}
		} else if _, err := config.LoadConfig(); err != nil {
			return err
		}

		printf(cmd, "Config file initialized at: %s\n", config.GetConfigFilePath())
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printf(cmd, "%s\n", config.GetConfigFilePath())
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings, flags included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Seed        uint64 `toml:"seed"` // 0 seeds from the clock
	MinShuffles int    `toml:"min_shuffles"`
	MaxShuffles int    `toml:"max_shuffles"`
	Color       string `toml:"color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Seed:        0,
		MinShuffles: 1,
		MaxShuffles: 7,
		Color:       ColorAuto,
	}
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.MinShuffles < 1 {
		return fmt.Errorf("min_shuffles must be at least 1, got %d", c.MinShuffles)
	}
	if c.MaxShuffles < c.MinShuffles {
		return fmt.Errorf("max_shuffles (%d) must not be less than min_shuffles (%d)", c.MaxShuffles, c.MinShuffles)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (expected auto, always or never)", c.Color)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "klondike", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	// Missing keys keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file, creating its directory if needed
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Display DisplayConfig `mapstructure:"display"`
	History HistoryConfig `mapstructure:"history"`
}

type UIConfig struct {
	Theme           string `mapstructure:"theme"`
	MouseEnabled    bool   `mapstructure:"mouse_enabled"`
	PanelWidthRatio int    `mapstructure:"panel_width_ratio"`
	ShowBreadcrumbs bool   `mapstructure:"show_breadcrumbs"`
}

// DisplayConfig provides the startup values for the runtime display
// toggles; flipping them in the app is never written back.
type DisplayConfig struct {
	ShowNodeTypes  bool   `mapstructure:"show_node_types"`
	ShowNodeValues bool   `mapstructure:"show_node_values"`
	MaxValueLength int    `mapstructure:"max_value_length"`
	Indent         string `mapstructure:"indent"`
}

type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		UI: UIConfig{
			Theme:           "default",
			MouseEnabled:    true,
			PanelWidthRatio: 40,
			ShowBreadcrumbs: true,
		},
		Display: DisplayConfig{
			ShowNodeTypes:  false,
			ShowNodeValues: false,
			MaxValueLength: 50,
			Indent:         "  ",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 50,
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config paths in priority order: user config dir, then cwd
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "lazyjson"))
	}
	v.AddConfigPath(".")

	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("ui.panel_width_ratio", 40)
	v.SetDefault("ui.show_breadcrumbs", true)
	v.SetDefault("display.show_node_types", false)
	v.SetDefault("display.show_node_values", false)
	v.SetDefault("display.max_value_length", 50)
	v.SetDefault("display.indent", "  ")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 50)

	// A missing config file is fine, the defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lazyjson"), nil
}

// Package config reads the TOML configuration file of datavis.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every value is
// optional: a nil field keeps the default or the value given on the command
// line.
type FileConfig struct {
	Bar    BarConfig    `toml:"bar"`
	Lines  LinesConfig  `toml:"lines"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// BarConfig maps the settings of the bar chart.
type BarConfig struct {
	File     *string  `toml:"file"`
	Category *string  `toml:"category"`
	Value    *string  `toml:"value"`
	Locale   *string  `toml:"locale"`
	Fill     *string  `toml:"fill"`
	Padding  *float64 `toml:"padding"`
	Width    *float64 `toml:"width"`
	Height   *float64 `toml:"height"`
}

// LinesConfig maps the settings of the line chart.
type LinesConfig struct {
	File          *string  `toml:"file"`
	Width         *float64 `toml:"width"`
	Height        *float64 `toml:"height"`
	ContextHeight *float64 `toml:"context-height"`
	Rest          *float64 `toml:"opacity-rest"`
	Dimmed        *float64 `toml:"opacity-dimmed"`
}

// ServerConfig maps the settings of the web viewer.
type ServerConfig struct {
	Addr *string `toml:"addr"`
}

type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "datavis", "config.toml")
}

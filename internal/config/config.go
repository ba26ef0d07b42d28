package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for an editing session.
// Values are populated from .shapelist.yaml, SHAPELIST_* env vars, and CLI flags.
type Config struct {
	Capacity      int    `mapstructure:"capacity"`
	Prompt        string `mapstructure:"prompt"`
	Strict        bool   `mapstructure:"strict"`
	Color         bool   `mapstructure:"color"`
	TelemetryPath string `mapstructure:"telemetry_path"`
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("capacity", 10)
	viper.SetDefault("prompt", "Command: ")
	viper.SetDefault("strict", false)
	viper.SetDefault("color", true)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Capacity < 0 {
		return Config{}, fmt.Errorf("config: capacity must not be negative, got %d", cfg.Capacity)
	}
	return cfg, nil
}

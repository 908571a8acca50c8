package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds runtime configuration for a weft invocation. Values come
// from .weft.yaml, WEFT_* env vars, and CLI flags, in rising priority.
type Config struct {
	Strategy string `mapstructure:"strategy"`
	Directed bool   `mapstructure:"directed"`
	Database string `mapstructure:"database"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("strategy", "quickunion")
	viper.SetDefault("directed", true)
	viper.SetDefault("database", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

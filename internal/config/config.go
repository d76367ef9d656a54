// Package config provides configuration management for the phq CLI using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports YAML files (.phq.yml by default),
// environment variable overrides with a PHQ_ prefix, and validation of the
// output settings. Precedence, highest to lowest: command-line flags,
// PHQ_ environment variables, the configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	phqerrors "github.com/acodcha/phq-sub004/internal/errors"
)

// Config holds all phq CLI settings.
type Config struct {
	Output   OutputConfig `mapstructure:"output"    yaml:"output"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
}

// OutputConfig controls how conversion results are rendered.
type OutputConfig struct {
	// Format is one of "text", "json", or "yaml".
	Format string `mapstructure:"format" yaml:"format"`
	// Precision is the number of significant digits; negative selects the
	// shortest exact representation.
	Precision int `mapstructure:"precision" yaml:"precision"`
	// Locale is a BCP 47 tag used for grouped digits in text output, e.g.
	// "en-US" or "de".
	Locale string `mapstructure:"locale" yaml:"locale"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "text",
			Precision: -1,
			Locale:    "en-US",
		},
		LogLevel: "info",
	}
}

// Load builds a Config from viper's merged sources and validates it.
func Load() (*Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, phqerrors.InvalidConfig("root", err)
	}

	// Unmarshal sees the config file through the mapstructure tags; the flag
	// and env paths use the dashed key ("log-level" vs the file's
	// "log_level"), so re-apply explicit settings to let those overrides win.
	if viper.IsSet("output.format") {
		cfg.Output.Format = viper.GetString("output.format")
	}
	if viper.IsSet("output.precision") {
		cfg.Output.Precision = viper.GetInt("output.precision")
	}
	if viper.IsSet("output.locale") {
		cfg.Output.Locale = viper.GetString("output.locale")
	}
	if viper.IsSet("log-level") {
		cfg.LogLevel = viper.GetString("log-level")
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a Config for usable values.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json", "yaml":
	default:
		return phqerrors.InvalidConfig("output.format",
			fmt.Errorf("unsupported format %q (supported: text, json, yaml)", cfg.Output.Format))
	}
	if cfg.Output.Precision > 17 {
		return phqerrors.InvalidConfig("output.precision",
			fmt.Errorf("precision %d exceeds float64 significant digits", cfg.Output.Precision))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return phqerrors.InvalidConfig("log_level",
			fmt.Errorf("unsupported level %q (supported: debug, info, warn, error)", cfg.LogLevel))
	}
	return nil
}

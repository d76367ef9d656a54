// Package cmd provides the command-line interface for phq with configuration
// management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--format, --precision, etc.) - highest priority
//	2. PHQ_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (PHQ_OUTPUT_FORMAT, etc.)
//	4. Configuration files (.phq.yml) - lowest priority
//
// Environment Variables:
//
//	PHQ_CONFIG_FILE: Path to custom configuration file
//	PHQ_OUTPUT_FORMAT: Override output format (text, json, yaml)
//	PHQ_OUTPUT_PRECISION: Override significant digits
//	PHQ_OUTPUT_LOCALE: Override locale for text output
//	And more following the PHQ_<SECTION>_<OPTION> pattern
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phq",
	Short: "Unit-aware physical quantity conversion",
	Long: `phq converts values between measurement units with dimensional safety,
backed by the same data-driven unit tables the library uses.

Key Features:
  • Conversion between any two units of a category
  • Automatic category detection from unit spellings
  • Unit catalog queries with dimensions and spellings
  • Text, JSON, and YAML output

Quick Start:
  phq convert 5 ft m              Convert 5 feet to metres
  phq convert 101.325 kPa atm     Convert pressure units
  phq units                       List unit categories
  phq units pressure              List the pressure units

Documentation: https://github.com/acodcha/phq-sub004`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Accept underscore-separated flag names (--log_level) as aliases for the
	// dashed forms, matching the config file keys.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .phq.yml, can also use PHQ_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().IntP("precision", "p", -1, "significant digits, -1 for shortest exact")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output.precision", rootCmd.PersistentFlags().Lookup("precision"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. PHQ_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .phq.yml in the current directory or home directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("PHQ_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.SetConfigName(".phq")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PHQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; all settings have defaults.
	_ = viper.ReadInConfig()
}

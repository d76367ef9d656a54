package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/acodcha/phq-sub004/internal/config"
	"github.com/acodcha/phq-sub004/internal/version"
)

var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for phq including the semantic version,
git commit hash, build timestamp, Go version, and target platform.

Examples:
  phq version                  # Show version description
  phq version --short          # Show version number only
  phq version --format json    # Output as JSON`,
	RunE: runVersionCommand,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "show version number only")
}

func runVersionCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	info := version.Get()

	if versionShort {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, info.String())
	}
	return nil
}

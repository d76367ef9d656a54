package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/acodcha/phq-sub004/internal/config"
	"github.com/acodcha/phq-sub004/unit"
)

// unitsCmd represents the units command
var unitsCmd = &cobra.Command{
	Use:   "units [CATEGORY]",
	Short: "List unit categories or the units of one category",
	Long: `Without arguments, list every unit category with its dimension signature.
With a category name, list that category's units: abbreviation, descriptive
name, recognized spellings, and which unit is the standard (storage) unit.

Examples:
  phq units
  phq units pressure
  phq units mass-density --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnitsCommand,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

// categoryInfo is the structured form of one category listing.
type categoryInfo struct {
	Name      string `json:"name"      yaml:"name"`
	Dimension string `json:"dimension" yaml:"dimension"`
	Standard  string `json:"standard"  yaml:"standard"`
	Units     int    `json:"units"     yaml:"units"`
}

// unitInfo is the structured form of one unit listing.
type unitInfo struct {
	Abbreviation string   `json:"abbreviation" yaml:"abbreviation"`
	Name         string   `json:"name"         yaml:"name"`
	Spellings    []string `json:"spellings"    yaml:"spellings"`
	Standard     bool     `json:"standard"     yaml:"standard"`
}

func runUnitsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return listCategories(out, cfg)
	}

	category, err := unit.ParseCategory(args[0])
	if err != nil {
		return err
	}
	return listUnits(out, cfg, category)
}

func listCategories(out io.Writer, cfg *config.Config) error {
	infos := make([]categoryInfo, 0, len(unit.Categories()))
	for _, c := range unit.Categories() {
		infos = append(infos, categoryInfo{
			Name:      c.String(),
			Dimension: c.Dimension().String(),
			Standard:  c.Abbreviation(c.Standard()),
			Units:     c.Count(),
		})
	}

	switch cfg.Output.Format {
	case "json":
		return writeJSON(out, infos)
	case "yaml":
		return writeYAML(out, infos)
	default:
		for _, info := range infos {
			fmt.Fprintf(out, "%-24s %-14s standard: %-10s %d units\n",
				info.Name, info.Dimension, info.Standard, info.Units)
		}
		return nil
	}
}

func listUnits(out io.Writer, cfg *config.Config, category unit.Category) error {
	infos := make([]unitInfo, 0, category.Count())
	for i := 0; i < category.Count(); i++ {
		infos = append(infos, unitInfo{
			Abbreviation: category.Abbreviation(i),
			Name:         category.Name(i),
			Spellings:    category.Spellings(i),
			Standard:     i == category.Standard(),
		})
	}

	switch cfg.Output.Format {
	case "json":
		return writeJSON(out, infos)
	case "yaml":
		return writeYAML(out, infos)
	default:
		for _, info := range infos {
			marker := " "
			if info.Standard {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-12s %-28s %s\n",
				marker, info.Abbreviation, info.Name, strings.Join(info.Spellings, ", "))
		}
		fmt.Fprintln(out, "\n* standard (storage) unit")
		return nil
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func writeYAML(out io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

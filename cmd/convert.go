package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"github.com/acodcha/phq-sub004/internal/config"
	"github.com/acodcha/phq-sub004/internal/format"
	"github.com/acodcha/phq-sub004/internal/logging"
	"github.com/acodcha/phq-sub004/unit"
)

var convertCategory string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert VALUE FROM TO",
	Short: "Convert a value between two units",
	Long: `Convert a value from one measurement unit to another within a category.

The FROM unit may be any recognized spelling (e.g. "kPa", "N/m^2", "psi");
its category is detected automatically unless --category is given. The TO
unit must belong to the same category.

Examples:
  phq convert 5 ft m
  phq convert 101.325 kPa atm
  phq convert 70 mi/hr km/h --precision 4
  phq convert 20 C F --category temperature`,
	Args: cobra.ExactArgs(3),
	RunE: runConvertCommand,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "unit category (detected from FROM when omitted)")
}

// conversionResult is the structured output of one conversion.
type conversionResult struct {
	Input    float64 `json:"input"    yaml:"input"`
	From     string  `json:"from"     yaml:"from"`
	Value    float64 `json:"value"    yaml:"value"`
	Unit     string  `json:"unit"     yaml:"unit"`
	Category string  `json:"category" yaml:"category"`
}

func runConvertCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: "text",
	})
	ctx := context.Background()

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	category, from, err := resolveFrom(args[1])
	if err != nil {
		return err
	}
	logger.Debug(ctx, "resolved source unit",
		"category", category.String(), "unit", category.Abbreviation(from))

	to, err := category.Parse(args[2])
	if err != nil {
		return err
	}

	result := conversionResult{
		Input:    value,
		From:     category.Abbreviation(from),
		Value:    category.Convert(value, from, to),
		Unit:     category.Abbreviation(to),
		Category: category.String(),
	}

	return writeResult(cmd, cfg, result)
}

// resolveFrom resolves the source unit, either within the category given by
// --category or by searching every category for the spelling.
func resolveFrom(spelling string) (unit.Category, int, error) {
	if convertCategory != "" {
		category, err := unit.ParseCategory(convertCategory)
		if err != nil {
			return 0, 0, err
		}
		from, err := category.Parse(spelling)
		if err != nil {
			return 0, 0, err
		}
		return category, from, nil
	}
	resolved, err := unit.Lookup(spelling)
	if err != nil {
		return 0, 0, err
	}
	return resolved.Category, resolved.Unit, nil
}

func writeResult(cmd *cobra.Command, cfg *config.Config, result conversionResult) error {
	out := cmd.OutOrStdout()

	switch cfg.Output.Format {
	case "json":
		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	default:
		printTextResult(out, cfg, result)
	}
	return nil
}

// printTextResult renders the human-readable form with locale-aware digit
// grouping, e.g. "5 ft = 1.524 m".
func printTextResult(out interface{ Write([]byte) (int, error) }, cfg *config.Config, result conversionResult) {
	tag, err := language.Parse(cfg.Output.Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	printer := message.NewPrinter(tag)

	if cfg.Output.Precision >= 0 {
		printer.Fprintf(out, "%v %s = %v %s\n",
			number.Decimal(result.Input),
			result.From,
			number.Decimal(result.Value, number.Precision(cfg.Output.Precision)),
			result.Unit)
		return
	}
	// Shortest exact rendering bypasses locale grouping so the digits
	// round-trip.
	fmt.Fprintf(out, "%s %s = %s %s\n",
		format.Shortest(result.Input), result.From,
		format.Shortest(result.Value), result.Unit)
}

package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures its output.
// Flag values survive between cobra executions, so every call resets the
// flag-backed globals and passes --format explicitly where the output shape
// matters.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	convertCategory = ""
	versionShort = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConvertText(t *testing.T) {
	out, err := executeCommand(t, "convert", "1", "km", "m", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "1 km = 1000 m\n", out)
}

func TestConvertDetectsCategory(t *testing.T) {
	out, err := executeCommand(t, "convert", "2.5", "bar", "kPa", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "2.5 bar = 250 kPa\n", out)
}

func TestConvertCategoryFlag(t *testing.T) {
	out, err := executeCommand(t, "convert", "0", "C", "K",
		"--category", "temperature", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "0 °C = 273.15 K\n", out)
}

func TestConvertJSON(t *testing.T) {
	out, err := executeCommand(t, "convert", "1", "km", "m", "--format", "json")
	require.NoError(t, err)

	var result conversionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 1.0, result.Input)
	assert.Equal(t, "km", result.From)
	assert.Equal(t, 1000.0, result.Value)
	assert.Equal(t, "m", result.Unit)
	assert.Equal(t, "length", result.Category)
}

func TestConvertYAML(t *testing.T) {
	out, err := executeCommand(t, "convert", "1", "km", "m", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "value: 1000")
	assert.Contains(t, out, "unit: m")
}

func TestConvertErrors(t *testing.T) {
	t.Run("unknown unit", func(t *testing.T) {
		_, err := executeCommand(t, "convert", "5", "furlong", "m", "--format", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown unit")
	})

	t.Run("target unit from another category", func(t *testing.T) {
		_, err := executeCommand(t, "convert", "5", "ft", "Pa", "--format", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown unit")
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := executeCommand(t, "convert", "abc", "ft", "m", "--format", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value")
	})

	t.Run("unknown category flag", func(t *testing.T) {
		_, err := executeCommand(t, "convert", "5", "ft", "m",
			"--category", "densiti", "--format", "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown unit category")
	})
}

func TestUnitsListsCategories(t *testing.T) {
	out, err := executeCommand(t, "units", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "pressure")
	assert.Contains(t, out, "T^-2·L^-1·M")
	assert.Contains(t, out, "temperature-difference")
}

func TestUnitsListsOneCategory(t *testing.T) {
	out, err := executeCommand(t, "units", "pressure", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "pascal")
	assert.Contains(t, out, "psi")
	assert.Contains(t, out, "* Pa", "standard unit is marked")

	_, err = executeCommand(t, "units", "nope", "--format", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit category")
}

func TestUnitsJSON(t *testing.T) {
	out, err := executeCommand(t, "units", "pressure", "--format", "json")
	require.NoError(t, err)

	var infos []unitInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.NotEmpty(t, infos)

	standards := 0
	for _, info := range infos {
		if info.Standard {
			standards++
			assert.Equal(t, "Pa", info.Abbreviation)
		}
	}
	assert.Equal(t, 1, standards, "exactly one standard unit")
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "phq")

	out, err = executeCommand(t, "version", "--short", "--format", "text")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestVersionHonorsConfiguredFormat(t *testing.T) {
	// Configured output format (config file or environment) applies to the
	// version command too, not only convert and units.
	viper.Set("output.format", "json")
	defer viper.Set("output.format", "text")

	out, err := executeCommand(t, "version")
	require.NoError(t, err)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "platform")
}

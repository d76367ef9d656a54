package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhQErrorMessage(t *testing.T) {
	err := &PhQError{
		Type:    ErrorTypeParse,
		Code:    "UNKNOWN_UNIT",
		Message: `unknown unit "pa"`,
	}
	assert.Equal(t, `[UNKNOWN_UNIT] unknown unit "pa"`, err.Error())

	err.Suggestions = []string{"Pa", "kPa"}
	assert.Equal(t, `[UNKNOWN_UNIT] unknown unit "pa" (did you mean Pa, kPa?)`, err.Error())
}

func TestPhQErrorCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := InvalidConfig("output.format", cause)

	assert.Contains(t, err.Error(), "output.format")
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestPhQErrorIs(t *testing.T) {
	a := UnknownUnit("furlong", nil)
	b := UnknownUnit("fathom", nil)
	c := UnknownCategory("furlong", nil)

	assert.True(t, stderrors.Is(a, b), "same type and code match")
	assert.False(t, stderrors.Is(a, c), "different codes do not match")
	assert.False(t, stderrors.Is(a, fmt.Errorf("furlong")))
}

func TestUnknownUnitSuggestions(t *testing.T) {
	err := UnknownUnit("pa", []string{"Pa", "kPa", "MPa", "psi", "m"})
	require.NotEmpty(t, err.Suggestions)
	assert.Equal(t, "Pa", err.Suggestions[0], "case-insensitive exact match ranks first")
	assert.LessOrEqual(t, len(err.Suggestions), 3)
}

func TestSuggest(t *testing.T) {
	candidates := []string{"pressure", "temperature", "temperature-difference", "mass", "mass-density"}

	t.Run("exact case-insensitive first", func(t *testing.T) {
		got := Suggest("Pressure", candidates, 3)
		require.NotEmpty(t, got)
		assert.Equal(t, "pressure", got[0])
	})

	t.Run("prefix match", func(t *testing.T) {
		got := Suggest("temp", candidates, 3)
		assert.Equal(t, []string{"temperature", "temperature-difference"}, got)
	})

	t.Run("edit distance", func(t *testing.T) {
		got := Suggest("masss", candidates, 3)
		assert.Contains(t, got, "mass")
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Suggest("zzzzzz", candidates, 3))
	})

	t.Run("respects max", func(t *testing.T) {
		got := Suggest("m", candidates, 1)
		assert.Len(t, got, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Suggest("", candidates, 3))
	})
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("pa", "pa"))
	assert.Equal(t, 1, editDistance("pa", "kpa"))
	assert.Equal(t, 2, editDistance("psi", "pa"))
	assert.Equal(t, 3, editDistance("", "abc"))
}

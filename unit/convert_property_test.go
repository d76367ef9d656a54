//go:build property
// +build property

package unit

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// closeEnough compares with a relative tolerance that absorbs conversion
// round-off while catching real errors.
func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	// The affine temperature scales cancel near zero, leaving a small
	// absolute error, so the tolerance carries an absolute floor.
	return diff <= 1e-9*math.Max(scale, 1)
}

// TestRoundTripProperties tests that converting to the standard unit and
// back recovers the input for every unit of every category.
func TestRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("to-standard then from-standard recovers input", prop.ForAll(
		func(value float64, categoryIndex, unitIndex int) bool {
			categories := Categories()
			c := categories[categoryIndex%len(categories)]
			u := unitIndex % c.Count()

			std := c.Convert(value, u, c.Standard())
			back := c.Convert(std, c.Standard(), u)
			return closeEnough(value, back)
		},
		gen.Float64Range(-1e9, 1e9),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.Property("standard to standard is exact identity", prop.ForAll(
		func(value float64, categoryIndex int) bool {
			categories := Categories()
			c := categories[categoryIndex%len(categories)]
			return c.Convert(value, c.Standard(), c.Standard()) == value
		},
		gen.Float64(),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// TestInverseConsistencyProperties tests that converting between any two
// units of a category and back recovers the input.
func TestInverseConsistencyProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("A to B to A recovers input", prop.ForAll(
		func(value float64, categoryIndex, fromIndex, toIndex int) bool {
			categories := Categories()
			c := categories[categoryIndex%len(categories)]
			from := fromIndex % c.Count()
			to := toIndex % c.Count()

			there := c.Convert(value, from, to)
			back := c.Convert(there, to, from)
			return closeEnough(value, back)
		},
		gen.Float64Range(-1e9, 1e9),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.Property("same unit is exact identity", prop.ForAll(
		func(value float64, categoryIndex, unitIndex int) bool {
			categories := Categories()
			c := categories[categoryIndex%len(categories)]
			u := unitIndex % c.Count()
			return c.Convert(value, u, u) == value
		},
		gen.Float64(),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

// TestTypedConversionProperties tests the generic typed API against the
// runtime table API.
func TestTypedConversionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("typed and runtime conversion agree", prop.ForAll(
		func(value float64, fromIndex, toIndex int) bool {
			from := PressureUnit(fromIndex % Pressure.Count())
			to := PressureUnit(toIndex % Pressure.Count())

			typed := Convert(value, from, to)
			runtime := Pressure.Convert(value, int(from), int(to))
			return typed == runtime
		},
		gen.Float64Range(-1e12, 1e12),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

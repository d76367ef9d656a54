//go:build property
// +build property

package quantity

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/acodcha/phq-sub004/unit"
)

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-9*math.Max(scale, 1)
}

// TestAlgebraicClosureProperties tests that mutually inverse cross-type
// products recover their operands.
func TestAlgebraicClosureProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	nonZero := gen.Float64Range(1e-6, 1e6)

	properties.Property("pressure times area divided by area recovers pressure", prop.ForAll(
		func(p, a float64) bool {
			pressure := NewStandardStaticPressure[float64](p)
			area := NewStandardArea[float64](a)
			back := pressure.MulArea(area).DivArea(area)
			return approxEqual(pressure.Value(), back.Value())
		},
		nonZero, nonZero,
	))

	properties.Property("speed times time divided by time recovers speed", prop.ForAll(
		func(v, s float64) bool {
			speed := NewStandardSpeed[float64](v)
			duration := NewStandardTime[float64](s)
			back := speed.MulTime(duration).DivTime(duration)
			return approxEqual(speed.Value(), back.Value())
		},
		nonZero, nonZero,
	))

	properties.Property("area from lengths divided by one length recovers the other", prop.ForAll(
		func(l, w float64) bool {
			length := NewStandardLength[float64](l)
			width := NewStandardLength[float64](w)
			back := AreaFromLengths(length, width).DivLength(width)
			return approxEqual(length.Value(), back.Value())
		},
		nonZero, nonZero,
	))

	properties.Property("force magnitude is invariant under scaling by k then 1/k", prop.ForAll(
		func(x, y, z, k float64) bool {
			f := NewForce[float64](x, y, z, unit.Newton)
			scaled := f.MulScalar(k).DivScalar(k)
			return approxEqual(f.Magnitude().Value(), scaled.Magnitude().Value())
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		nonZero,
	))

	properties.TestingRun(t)
}

// TestConstructionQueryProperties tests that constructing in any unit and
// querying in the same unit recovers the input.
func TestConstructionQueryProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("length construct-then-query recovers input", prop.ForAll(
		func(value float64, unitIndex int) bool {
			u := unit.LengthUnit(unitIndex % unit.Length.Count())
			l := NewLength[float64](value, u)
			return approxEqual(value, l.In(u))
		},
		gen.Float64Range(-1e9, 1e9),
		gen.IntRange(0, 1000),
	))

	properties.Property("temperature construct-then-query recovers input", prop.ForAll(
		func(value float64, unitIndex int) bool {
			u := unit.TemperatureUnit(unitIndex % unit.Temperature.Count())
			temp := NewTemperature[float64](value, u)
			return approxEqual(value, temp.In(u))
		},
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}

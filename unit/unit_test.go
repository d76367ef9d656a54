package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acodcha/phq-sub004/dimension"
)

func TestConvertKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"feet to metres", Convert(5.0, Foot, Metre), 1.524},
		{"metres to feet", Convert(0.3048, Metre, Foot), 1},
		{"inches to millimetres", Convert(1.0, Inch, Millimetre), 25.4},
		{"kilopascals to pascals", Convert(101.325, Kilopascal, Pascal), 101325},
		{"pascals to atmospheres", Convert(101325.0, Pascal, Atmosphere), 1},
		{"bar to kilopascals", Convert(1.0, Bar, Kilopascal), 100},
		{"pound-force to newtons", Convert(1.0, PoundForce, Newton), 4.4482216152605},
		{"miles per hour to metres per second", Convert(1.0, MilePerHour, MetrePerSecond), 0.44704},
		{"kilowatt-hours to joules", Convert(1.0, KilowattHour, Joule), 3.6e6},
		{"litres to cubic metres", Convert(1000.0, Litre, CubicMetre), 1},
		{"degrees to radians, half turn", Convert(180.0, Degree, Radian), 3.141592653589793},
		{"pounds to kilograms", Convert(1.0, Pound, Kilogram), 0.45359237},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.expected, tt.got, 1e-12)
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	// Converting a unit to itself must be exact, not merely close.
	values := []float64{0, 1, -2.5, 0.1, 101325, 1e-300, 1e300}
	for _, v := range values {
		assert.Equal(t, v, Convert(v, PoundPerSquareInch, PoundPerSquareInch))
		assert.Equal(t, v, Convert(v, Pascal, Pascal))
		assert.Equal(t, v, ToStandard(v, Metre), "standard unit to-standard is a no-op")
		assert.Equal(t, v, FromStandard(v, Metre), "standard unit from-standard is a no-op")
	}
}

func TestConvertTemperatureAffine(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"freezing point Celsius to Kelvin", Convert(0.0, Celsius, Kelvin), 273.15},
		{"freezing point Fahrenheit to Celsius", Convert(32.0, Fahrenheit, Celsius), 0},
		{"boiling point Celsius to Fahrenheit", Convert(100.0, Celsius, Fahrenheit), 212},
		{"body temperature Fahrenheit to Kelvin", Convert(98.6, Fahrenheit, Kelvin), 310.15},
		{"absolute zero Kelvin to Rankine", Convert(0.0, Kelvin, Rankine), 0},
		{"Rankine to Fahrenheit", Convert(459.67, Rankine, Fahrenheit), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.got, 1e-9)
		})
	}
}

func TestConvertTemperatureDifferenceLinear(t *testing.T) {
	// Differences have no offsets: 1 K change = 1.8 °F change.
	assert.InDelta(t, 1.8, Convert(1.0, DeltaKelvin, DeltaFahrenheit), 1e-12)
	assert.InDelta(t, 1.0, Convert(1.0, DeltaKelvin, DeltaCelsius), 1e-12)
}

func TestCategoryMetadata(t *testing.T) {
	assert.Equal(t, dimension.Dimension{Time: -2, Length: -1, Mass: 1}, Pressure.Dimension())
	assert.Equal(t, dimension.Dimension{Length: 1}, Length.Dimension())
	assert.Equal(t, dimension.Dimensionless, Angle.Dimension())

	assert.Equal(t, int(Pascal), Pressure.Standard())
	assert.Equal(t, "Pa", Pressure.Abbreviation(Pressure.Standard()))
	assert.Equal(t, "pressure", Pressure.String())

	assert.Equal(t, Pascal, Standard[PressureUnit]())
	assert.Equal(t, "kPa", Abbreviation(Kilopascal))
}

func TestAllCategoriesRegistered(t *testing.T) {
	for _, c := range Categories() {
		require.NotNil(t, tables[c], "category %d has no table", int(c))
		tab := tables[c]
		require.NotEmpty(t, tab.entries, "category %s has no units", tab.name)
		require.GreaterOrEqual(t, tab.standard, 0)
		require.Less(t, tab.standard, len(tab.entries))

		std := tab.entries[tab.standard]
		assert.Equal(t, 1.0, std.scale, "category %s standard unit scale must be 1", tab.name)
		assert.Equal(t, 0.0, std.offset, "category %s standard unit offset must be 0", tab.name)

		for i, e := range tab.entries {
			assert.NotEmpty(t, e.name, "category %s unit %d missing name", tab.name, i)
			assert.NotEmpty(t, e.abbreviation, "category %s unit %d missing abbreviation", tab.name, i)
			assert.NotZero(t, e.scale, "category %s unit %s has zero scale", tab.name, e.name)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
		expected PressureUnit
	}{
		{"abbreviation", "kPa", Kilopascal},
		{"standard abbreviation", "Pa", Pascal},
		{"newton per square metre", "N/m^2", Pascal},
		{"ascii variant", "N/m2", Pascal},
		{"base unit spelling", "kg/(m·s^2)", Pascal},
		{"psi", "psi", PoundPerSquareInch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse[PressureUnit](tt.spelling)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}

func TestParseCaseSensitive(t *testing.T) {
	// "pa" is not a recognized spelling of "Pa".
	_, err := Parse[PressureUnit]("pa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit")
	assert.Contains(t, err.Error(), "Pa", "error should suggest the near-miss spelling")
}

func TestParseForceSpellings(t *testing.T) {
	for _, spelling := range []string{"N", "kg·m/s^2", "kg*m/s^2"} {
		u, err := Parse[ForceUnit](spelling)
		require.NoError(t, err, "spelling %q", spelling)
		assert.Equal(t, Newton, u)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("mass-density")
	require.NoError(t, err)
	assert.Equal(t, MassDensity, c)

	_, err = ParseCategory("densiti")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit category")
}

func TestLookup(t *testing.T) {
	tests := []struct {
		spelling string
		category Category
		unit     int
	}{
		{"kPa", Pressure, int(Kilopascal)},
		{"ft", Length, int(Foot)},
		{"lbf", Force, int(PoundForce)},
		{"K", Temperature, int(Kelvin)},
		{"m/s^2", Acceleration, int(MetrePerSquareSecond)},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			r, err := Lookup(tt.spelling)
			require.NoError(t, err)
			assert.Equal(t, tt.category, r.Category)
			assert.Equal(t, tt.unit, r.Unit)
		})
	}

	_, err := Lookup("furlong")
	assert.Error(t, err)
}

func TestSpellingsIncludeAbbreviation(t *testing.T) {
	spellings := Spellings(Pascal)
	require.NotEmpty(t, spellings)
	assert.Equal(t, "Pa", spellings[0])
	assert.Contains(t, spellings, "N/m^2")
}

func TestSpellingsUniqueWithinCategory(t *testing.T) {
	for _, c := range Categories() {
		seen := make(map[string]string)
		for i := 0; i < c.Count(); i++ {
			for _, s := range c.Spellings(i) {
				prev, dup := seen[s]
				assert.False(t, dup, "category %s: spelling %q used by both %s and %s",
					c.String(), s, prev, c.Name(i))
				seen[s] = c.Name(i)
			}
		}
	}
}

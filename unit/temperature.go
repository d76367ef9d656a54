package unit

import "github.com/acodcha/phq-sub004/dimension"

// TemperatureUnit is a unit of absolute temperature. The standard unit is
// the kelvin. Celsius and Fahrenheit are affine: they carry an offset in
// addition to a scale, the only units in the library that do.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
	Fahrenheit
	Rankine
)

// Category returns the Temperature category.
func (TemperatureUnit) Category() Category { return Temperature }

// String returns the unit's abbreviation.
func (u TemperatureUnit) String() string { return Abbreviation(u) }

// TemperatureDifferenceUnit is a unit of temperature difference. Differences
// transform linearly: the affine offsets of the absolute scales cancel when
// subtracting.
type TemperatureDifferenceUnit int

const (
	DeltaKelvin TemperatureDifferenceUnit = iota
	DeltaCelsius
	DeltaFahrenheit
	DeltaRankine
)

// Category returns the TemperatureDifference category.
func (TemperatureDifferenceUnit) Category() Category { return TemperatureDifference }

// String returns the unit's abbreviation.
func (u TemperatureDifferenceUnit) String() string { return Abbreviation(u) }

func init() {
	// K = °C + 273.15; K = (°F + 459.67)·5/9; K = °R·5/9.
	register(Temperature, &table{
		name:      "temperature",
		dimension: dimension.Dimension{Temperature: 1},
		standard:  int(Kelvin),
		entries: []entry{
			{name: "kelvin", abbreviation: "K", scale: 1},
			{name: "degree Celsius", abbreviation: "°C", spellings: []string{"C", "degC"}, scale: 1, offset: 273.15},
			{name: "degree Fahrenheit", abbreviation: "°F", spellings: []string{"F", "degF"}, scale: 5.0 / 9.0, offset: 459.67 * 5.0 / 9.0},
			{name: "degree Rankine", abbreviation: "°R", spellings: []string{"R", "degR"}, scale: 5.0 / 9.0},
		},
	})
	register(TemperatureDifference, &table{
		name:      "temperature-difference",
		dimension: dimension.Dimension{Temperature: 1},
		standard:  int(DeltaKelvin),
		entries: []entry{
			{name: "kelvin", abbreviation: "ΔK", spellings: []string{"dK"}, scale: 1},
			{name: "degree Celsius", abbreviation: "Δ°C", spellings: []string{"dC"}, scale: 1},
			{name: "degree Fahrenheit", abbreviation: "Δ°F", spellings: []string{"dF"}, scale: 5.0 / 9.0},
			{name: "degree Rankine", abbreviation: "Δ°R", spellings: []string{"dR"}, scale: 5.0 / 9.0},
		},
	})
}

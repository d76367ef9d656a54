package unit

import "github.com/acodcha/phq-sub004/dimension"

// SpeedUnit is a unit of speed. The standard unit is the metre per second.
type SpeedUnit int

const (
	MetrePerSecond SpeedUnit = iota
	KilometrePerHour
	MilePerHour
	FootPerSecond
	Knot
)

// Category returns the Speed category.
func (SpeedUnit) Category() Category { return Speed }

// String returns the unit's abbreviation.
func (u SpeedUnit) String() string { return Abbreviation(u) }

func init() {
	register(Speed, &table{
		name:      "speed",
		dimension: dimension.Dimension{Time: -1, Length: 1},
		standard:  int(MetrePerSecond),
		entries: []entry{
			{name: "metre per second", abbreviation: "m/s", scale: 1},
			{name: "kilometre per hour", abbreviation: "km/h", spellings: []string{"kph", "km/hr"}, scale: 1000.0 / 3600.0},
			{name: "mile per hour", abbreviation: "mi/hr", spellings: []string{"mph"}, scale: 0.44704},
			{name: "foot per second", abbreviation: "ft/s", scale: 0.3048},
			{name: "knot", abbreviation: "kn", spellings: []string{"kt", "knots"}, scale: 1852.0 / 3600.0},
		},
	})
}

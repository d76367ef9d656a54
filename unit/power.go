package unit

import "github.com/acodcha/phq-sub004/dimension"

// PowerUnit is a unit of power. The standard unit is the watt.
type PowerUnit int

const (
	Watt PowerUnit = iota
	Milliwatt
	Kilowatt
	Megawatt
	Horsepower
	FootPoundPerSecond
)

// Category returns the Power category.
func (PowerUnit) Category() Category { return Power }

// String returns the unit's abbreviation.
func (u PowerUnit) String() string { return Abbreviation(u) }

func init() {
	// 1 hp = 550 ft·lbf/s (mechanical horsepower).
	register(Power, &table{
		name:      "power",
		dimension: dimension.Dimension{Time: -3, Length: 2, Mass: 1},
		standard:  int(Watt),
		entries: []entry{
			{name: "watt", abbreviation: "W", spellings: []string{"J/s"}, scale: 1},
			{name: "milliwatt", abbreviation: "mW", scale: 1e-3},
			{name: "kilowatt", abbreviation: "kW", scale: 1e3},
			{name: "megawatt", abbreviation: "MW", scale: 1e6},
			{name: "horsepower", abbreviation: "hp", scale: 550 * 4.4482216152605 * 0.3048},
			{name: "foot-pound per second", abbreviation: "ft·lbf/s", scale: 4.4482216152605 * 0.3048},
		},
	})
}

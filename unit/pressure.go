package unit

import "github.com/acodcha/phq-sub004/dimension"

// PressureUnit is a unit of pressure or stress. The standard unit is the
// pascal.
type PressureUnit int

const (
	Pascal PressureUnit = iota
	Kilopascal
	Megapascal
	Gigapascal
	Bar
	Millibar
	Atmosphere
	PoundPerSquareInch
	PoundPerSquareFoot
)

// Category returns the Pressure category.
func (PressureUnit) Category() Category { return Pressure }

// String returns the unit's abbreviation.
func (u PressureUnit) String() string { return Abbreviation(u) }

func init() {
	// 1 psi = 1 lbf / 1 in^2 = 4.4482216152605 / 0.00064516 Pa.
	register(Pressure, &table{
		name:      "pressure",
		dimension: dimension.Dimension{Time: -2, Length: -1, Mass: 1},
		standard:  int(Pascal),
		entries: []entry{
			{name: "pascal", abbreviation: "Pa", spellings: []string{"N/m^2", "N/m2", "kg/(m·s^2)"}, scale: 1},
			{name: "kilopascal", abbreviation: "kPa", spellings: []string{"kN/m^2"}, scale: 1e3},
			{name: "megapascal", abbreviation: "MPa", spellings: []string{"N/mm^2", "MN/m^2"}, scale: 1e6},
			{name: "gigapascal", abbreviation: "GPa", spellings: []string{"kN/mm^2"}, scale: 1e9},
			{name: "bar", abbreviation: "bar", scale: 1e5},
			{name: "millibar", abbreviation: "mbar", scale: 1e2},
			{name: "atmosphere", abbreviation: "atm", scale: 101325},
			{name: "pound per square inch", abbreviation: "lbf/in^2", spellings: []string{"psi", "lbf/in2"}, scale: 4.4482216152605 / 0.00064516},
			{name: "pound per square foot", abbreviation: "lbf/ft^2", spellings: []string{"psf", "lbf/ft2"}, scale: 4.4482216152605 / 0.09290304},
		},
	})
}

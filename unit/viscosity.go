package unit

import "github.com/acodcha/phq-sub004/dimension"

// DynamicViscosityUnit is a unit of dynamic viscosity. The standard unit is
// the pascal-second.
type DynamicViscosityUnit int

const (
	PascalSecond DynamicViscosityUnit = iota
	Poise
	Centipoise
	PoundSecondPerSquareFoot
)

// Category returns the DynamicViscosity category.
func (DynamicViscosityUnit) Category() Category { return DynamicViscosity }

// String returns the unit's abbreviation.
func (u DynamicViscosityUnit) String() string { return Abbreviation(u) }

func init() {
	register(DynamicViscosity, &table{
		name:      "dynamic-viscosity",
		dimension: dimension.Dimension{Time: -1, Length: -1, Mass: 1},
		standard:  int(PascalSecond),
		entries: []entry{
			{name: "pascal-second", abbreviation: "Pa·s", spellings: []string{"Pa*s", "kg/(m·s)"}, scale: 1},
			{name: "poise", abbreviation: "P", scale: 0.1},
			{name: "centipoise", abbreviation: "cP", scale: 1e-3},
			{name: "pound-second per square foot", abbreviation: "lbf·s/ft^2", spellings: []string{"lbf*s/ft^2"}, scale: 4.4482216152605 / 0.09290304},
		},
	})
}

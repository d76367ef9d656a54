package unit

import "github.com/acodcha/phq-sub004/dimension"

// ForceUnit is a unit of force. The standard unit is the newton.
type ForceUnit int

const (
	Newton ForceUnit = iota
	Millinewton
	Kilonewton
	Meganewton
	PoundForce
	Dyne
)

// Category returns the Force category.
func (ForceUnit) Category() Category { return Force }

// String returns the unit's abbreviation.
func (u ForceUnit) String() string { return Abbreviation(u) }

func init() {
	// 1 lbf = 0.45359237 kg × 9.80665 m/s^2 exactly.
	register(Force, &table{
		name:      "force",
		dimension: dimension.Dimension{Time: -2, Length: 1, Mass: 1},
		standard:  int(Newton),
		entries: []entry{
			{name: "newton", abbreviation: "N", spellings: []string{"kg·m/s^2", "kg*m/s^2", "kg·m/s2"}, scale: 1},
			{name: "millinewton", abbreviation: "mN", scale: 1e-3},
			{name: "kilonewton", abbreviation: "kN", scale: 1e3},
			{name: "meganewton", abbreviation: "MN", scale: 1e6},
			{name: "pound-force", abbreviation: "lbf", scale: 4.4482216152605},
			{name: "dyne", abbreviation: "dyn", scale: 1e-5},
		},
	})
}

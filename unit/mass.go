package unit

import "github.com/acodcha/phq-sub004/dimension"

// MassUnit is a unit of mass. The standard unit is the kilogram.
type MassUnit int

const (
	Kilogram MassUnit = iota
	Gram
	Tonne
	Pound
	Ounce
	Slug
)

// Category returns the Mass category.
func (MassUnit) Category() Category { return Mass }

// String returns the unit's abbreviation.
func (u MassUnit) String() string { return Abbreviation(u) }

func init() {
	// 1 lb = 0.45359237 kg exactly; 1 slug = 1 lbf·s^2/ft.
	register(Mass, &table{
		name:      "mass",
		dimension: dimension.Dimension{Mass: 1},
		standard:  int(Kilogram),
		entries: []entry{
			{name: "kilogram", abbreviation: "kg", scale: 1},
			{name: "gram", abbreviation: "g", scale: 1e-3},
			{name: "tonne", abbreviation: "t", spellings: []string{"tonnes"}, scale: 1000},
			{name: "pound", abbreviation: "lb", spellings: []string{"lbm", "lbs"}, scale: 0.45359237},
			{name: "ounce", abbreviation: "oz", scale: 0.028349523125},
			{name: "slug", abbreviation: "slug", spellings: []string{"slugs"}, scale: 14.59390293720636},
		},
	})
}

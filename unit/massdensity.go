package unit

import "github.com/acodcha/phq-sub004/dimension"

// MassDensityUnit is a unit of mass density. The standard unit is the
// kilogram per cubic metre.
type MassDensityUnit int

const (
	KilogramPerCubicMetre MassDensityUnit = iota
	GramPerCubicCentimetre
	PoundPerCubicFoot
	SlugPerCubicFoot
)

// Category returns the MassDensity category.
func (MassDensityUnit) Category() Category { return MassDensity }

// String returns the unit's abbreviation.
func (u MassDensityUnit) String() string { return Abbreviation(u) }

func init() {
	register(MassDensity, &table{
		name:      "mass-density",
		dimension: dimension.Dimension{Length: -3, Mass: 1},
		standard:  int(KilogramPerCubicMetre),
		entries: []entry{
			{name: "kilogram per cubic metre", abbreviation: "kg/m^3", spellings: []string{"kg/m3"}, scale: 1},
			{name: "gram per cubic centimetre", abbreviation: "g/cm^3", spellings: []string{"g/cm3", "g/cc"}, scale: 1000},
			{name: "pound per cubic foot", abbreviation: "lb/ft^3", spellings: []string{"lb/ft3"}, scale: 0.45359237 / 0.028316846592},
			{name: "slug per cubic foot", abbreviation: "slug/ft^3", spellings: []string{"slug/ft3"}, scale: 14.59390293720636 / 0.028316846592},
		},
	})
}

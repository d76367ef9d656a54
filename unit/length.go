package unit

import "github.com/acodcha/phq-sub004/dimension"

// LengthUnit is a unit of length. The standard unit is the metre.
type LengthUnit int

const (
	Metre LengthUnit = iota
	Kilometre
	Centimetre
	Millimetre
	Micrometre
	Inch
	Foot
	Yard
	Mile
	NauticalMile
)

// Category returns the Length category.
func (LengthUnit) Category() Category { return Length }

// String returns the unit's abbreviation.
func (u LengthUnit) String() string { return Abbreviation(u) }

func init() {
	// Imperial factors follow the international yard and pound agreement:
	// 1 in = 0.0254 m exactly.
	register(Length, &table{
		name:      "length",
		dimension: dimension.Dimension{Length: 1},
		standard:  int(Metre),
		entries: []entry{
			{name: "metre", abbreviation: "m", spellings: []string{"meter"}, scale: 1},
			{name: "kilometre", abbreviation: "km", spellings: []string{"kilometer"}, scale: 1000},
			{name: "centimetre", abbreviation: "cm", spellings: []string{"centimeter"}, scale: 0.01},
			{name: "millimetre", abbreviation: "mm", spellings: []string{"millimeter"}, scale: 0.001},
			{name: "micrometre", abbreviation: "μm", spellings: []string{"um", "micron"}, scale: 1e-6},
			{name: "inch", abbreviation: "in", scale: 0.0254},
			{name: "foot", abbreviation: "ft", scale: 0.3048},
			{name: "yard", abbreviation: "yd", scale: 0.9144},
			{name: "mile", abbreviation: "mi", scale: 1609.344},
			{name: "nautical mile", abbreviation: "nmi", scale: 1852},
		},
	})
}

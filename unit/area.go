package unit

import "github.com/acodcha/phq-sub004/dimension"

// AreaUnit is a unit of area. The standard unit is the square metre.
type AreaUnit int

const (
	SquareMetre AreaUnit = iota
	SquareKilometre
	SquareCentimetre
	SquareMillimetre
	SquareInch
	SquareFoot
	Hectare
	Acre
)

// Category returns the Area category.
func (AreaUnit) Category() Category { return Area }

// String returns the unit's abbreviation.
func (u AreaUnit) String() string { return Abbreviation(u) }

func init() {
	register(Area, &table{
		name:      "area",
		dimension: dimension.Dimension{Length: 2},
		standard:  int(SquareMetre),
		entries: []entry{
			{name: "square metre", abbreviation: "m^2", spellings: []string{"m2", "m·m"}, scale: 1},
			{name: "square kilometre", abbreviation: "km^2", spellings: []string{"km2"}, scale: 1e6},
			{name: "square centimetre", abbreviation: "cm^2", spellings: []string{"cm2"}, scale: 1e-4},
			{name: "square millimetre", abbreviation: "mm^2", spellings: []string{"mm2"}, scale: 1e-6},
			{name: "square inch", abbreviation: "in^2", spellings: []string{"in2"}, scale: 0.00064516},
			{name: "square foot", abbreviation: "ft^2", spellings: []string{"ft2"}, scale: 0.09290304},
			{name: "hectare", abbreviation: "ha", scale: 1e4},
			{name: "acre", abbreviation: "ac", spellings: []string{"acres"}, scale: 4046.8564224},
		},
	})
}

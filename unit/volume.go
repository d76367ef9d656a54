package unit

import "github.com/acodcha/phq-sub004/dimension"

// VolumeUnit is a unit of volume. The standard unit is the cubic metre.
type VolumeUnit int

const (
	CubicMetre VolumeUnit = iota
	Litre
	Millilitre
	CubicCentimetre
	CubicInch
	CubicFoot
	USGallon
)

// Category returns the Volume category.
func (VolumeUnit) Category() Category { return Volume }

// String returns the unit's abbreviation.
func (u VolumeUnit) String() string { return Abbreviation(u) }

func init() {
	register(Volume, &table{
		name:      "volume",
		dimension: dimension.Dimension{Length: 3},
		standard:  int(CubicMetre),
		entries: []entry{
			{name: "cubic metre", abbreviation: "m^3", spellings: []string{"m3"}, scale: 1},
			{name: "litre", abbreviation: "L", spellings: []string{"l", "liter"}, scale: 1e-3},
			{name: "millilitre", abbreviation: "mL", spellings: []string{"ml"}, scale: 1e-6},
			{name: "cubic centimetre", abbreviation: "cm^3", spellings: []string{"cm3", "cc"}, scale: 1e-6},
			{name: "cubic inch", abbreviation: "in^3", spellings: []string{"in3"}, scale: 1.6387064e-5},
			{name: "cubic foot", abbreviation: "ft^3", spellings: []string{"ft3"}, scale: 0.028316846592},
			{name: "US gallon", abbreviation: "gal", spellings: []string{"gallon"}, scale: 0.003785411784},
		},
	})
}

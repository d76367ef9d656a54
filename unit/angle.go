package unit

import (
	"math"

	"github.com/acodcha/phq-sub004/dimension"
)

// AngleUnit is a unit of plane angle. The standard unit is the radian.
// Angle is dimensionless in the SI base-dimension sense.
type AngleUnit int

const (
	Radian AngleUnit = iota
	Degree
	Arcminute
	Arcsecond
	Revolution
)

// Category returns the Angle category.
func (AngleUnit) Category() Category { return Angle }

// String returns the unit's abbreviation.
func (u AngleUnit) String() string { return Abbreviation(u) }

func init() {
	register(Angle, &table{
		name:      "angle",
		dimension: dimension.Dimensionless,
		standard:  int(Radian),
		entries: []entry{
			{name: "radian", abbreviation: "rad", scale: 1},
			{name: "degree", abbreviation: "deg", spellings: []string{"°"}, scale: math.Pi / 180},
			{name: "arcminute", abbreviation: "arcmin", spellings: []string{"'"}, scale: math.Pi / 10800},
			{name: "arcsecond", abbreviation: "arcsec", spellings: []string{"\""}, scale: math.Pi / 648000},
			{name: "revolution", abbreviation: "rev", spellings: []string{"revs"}, scale: 2 * math.Pi},
		},
	})
}

package unit

import "github.com/acodcha/phq-sub004/dimension"

// AccelerationUnit is a unit of acceleration. The standard unit is the metre
// per square second.
type AccelerationUnit int

const (
	MetrePerSquareSecond AccelerationUnit = iota
	FootPerSquareSecond
	StandardGravity
)

// Category returns the Acceleration category.
func (AccelerationUnit) Category() Category { return Acceleration }

// String returns the unit's abbreviation.
func (u AccelerationUnit) String() string { return Abbreviation(u) }

func init() {
	register(Acceleration, &table{
		name:      "acceleration",
		dimension: dimension.Dimension{Time: -2, Length: 1},
		standard:  int(MetrePerSquareSecond),
		entries: []entry{
			{name: "metre per square second", abbreviation: "m/s^2", spellings: []string{"m/s2"}, scale: 1},
			{name: "foot per square second", abbreviation: "ft/s^2", spellings: []string{"ft/s2"}, scale: 0.3048},
			{name: "standard gravity", abbreviation: "g0", spellings: []string{"gee"}, scale: 9.80665},
		},
	})
}

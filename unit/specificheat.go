package unit

import "github.com/acodcha/phq-sub004/dimension"

// SpecificHeatCapacityUnit is a unit of specific heat capacity. The standard
// unit is the joule per kilogram per kelvin.
type SpecificHeatCapacityUnit int

const (
	JoulePerKilogramPerKelvin SpecificHeatCapacityUnit = iota
	KilojoulePerKilogramPerKelvin
	BTUPerPoundPerRankine
)

// Category returns the SpecificHeatCapacity category.
func (SpecificHeatCapacityUnit) Category() Category { return SpecificHeatCapacity }

// String returns the unit's abbreviation.
func (u SpecificHeatCapacityUnit) String() string { return Abbreviation(u) }

func init() {
	// 1 BTU/(lb·°R) = 4186.8 J/(kg·K) exactly, via the IT calorie.
	register(SpecificHeatCapacity, &table{
		name:      "specific-heat-capacity",
		dimension: dimension.Dimension{Time: -2, Length: 2, Temperature: -1},
		standard:  int(JoulePerKilogramPerKelvin),
		entries: []entry{
			{name: "joule per kilogram per kelvin", abbreviation: "J/(kg·K)", spellings: []string{"J/kg/K", "J/(kg*K)"}, scale: 1},
			{name: "kilojoule per kilogram per kelvin", abbreviation: "kJ/(kg·K)", spellings: []string{"kJ/kg/K"}, scale: 1e3},
			{name: "BTU per pound per degree Rankine", abbreviation: "BTU/(lb·°R)", spellings: []string{"BTU/lb/R"}, scale: 4186.8},
		},
	})
}

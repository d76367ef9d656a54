package unit

import "github.com/acodcha/phq-sub004/dimension"

// EnergyUnit is a unit of energy. The standard unit is the joule.
type EnergyUnit int

const (
	Joule EnergyUnit = iota
	Millijoule
	Kilojoule
	Megajoule
	WattHour
	KilowattHour
	FootPound
	BritishThermalUnit
	Calorie
	Electronvolt
)

// Category returns the Energy category.
func (EnergyUnit) Category() Category { return Energy }

// String returns the unit's abbreviation.
func (u EnergyUnit) String() string { return Abbreviation(u) }

func init() {
	register(Energy, &table{
		name:      "energy",
		dimension: dimension.Dimension{Time: -2, Length: 2, Mass: 1},
		standard:  int(Joule),
		entries: []entry{
			{name: "joule", abbreviation: "J", spellings: []string{"N·m", "N*m"}, scale: 1},
			{name: "millijoule", abbreviation: "mJ", scale: 1e-3},
			{name: "kilojoule", abbreviation: "kJ", scale: 1e3},
			{name: "megajoule", abbreviation: "MJ", scale: 1e6},
			{name: "watt-hour", abbreviation: "W·hr", spellings: []string{"Wh"}, scale: 3600},
			{name: "kilowatt-hour", abbreviation: "kW·hr", spellings: []string{"kWh"}, scale: 3.6e6},
			{name: "foot-pound", abbreviation: "ft·lbf", spellings: []string{"ft*lbf"}, scale: 4.4482216152605 * 0.3048},
			{name: "British thermal unit", abbreviation: "BTU", spellings: []string{"Btu"}, scale: 1055.05585262},
			{name: "calorie", abbreviation: "cal", scale: 4.184},
			{name: "electronvolt", abbreviation: "eV", scale: 1.602176634e-19},
		},
	})
}

package unit

import "github.com/acodcha/phq-sub004/dimension"

// FrequencyUnit is a unit of frequency. The standard unit is the hertz.
type FrequencyUnit int

const (
	Hertz FrequencyUnit = iota
	Kilohertz
	Megahertz
	Gigahertz
	PerMinute
)

// Category returns the Frequency category.
func (FrequencyUnit) Category() Category { return Frequency }

// String returns the unit's abbreviation.
func (u FrequencyUnit) String() string { return Abbreviation(u) }

func init() {
	register(Frequency, &table{
		name:      "frequency",
		dimension: dimension.Dimension{Time: -1},
		standard:  int(Hertz),
		entries: []entry{
			{name: "hertz", abbreviation: "Hz", spellings: []string{"/s", "1/s"}, scale: 1},
			{name: "kilohertz", abbreviation: "kHz", scale: 1e3},
			{name: "megahertz", abbreviation: "MHz", scale: 1e6},
			{name: "gigahertz", abbreviation: "GHz", scale: 1e9},
			{name: "per minute", abbreviation: "/min", spellings: []string{"1/min"}, scale: 1.0 / 60.0},
		},
	})
}

package unit

import "github.com/acodcha/phq-sub004/dimension"

// TimeUnit is a unit of time duration. The standard unit is the second.
type TimeUnit int

const (
	Second TimeUnit = iota
	Minute
	Hour
	Millisecond
	Microsecond
	Nanosecond
)

// Category returns the Time category.
func (TimeUnit) Category() Category { return Time }

// String returns the unit's abbreviation.
func (u TimeUnit) String() string { return Abbreviation(u) }

func init() {
	register(Time, &table{
		name:      "time",
		dimension: dimension.Dimension{Time: 1},
		standard:  int(Second),
		entries: []entry{
			{name: "second", abbreviation: "s", spellings: []string{"sec", "secs"}, scale: 1},
			{name: "minute", abbreviation: "min", spellings: []string{"mins"}, scale: 60},
			{name: "hour", abbreviation: "hr", spellings: []string{"hrs", "h"}, scale: 3600},
			{name: "millisecond", abbreviation: "ms", scale: 1e-3},
			{name: "microsecond", abbreviation: "μs", spellings: []string{"us"}, scale: 1e-6},
			{name: "nanosecond", abbreviation: "ns", scale: 1e-9},
		},
	})
}

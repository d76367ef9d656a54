// Package unit provides measurement-unit categories and the conversion engine
// behind every physical quantity type.
//
// Each category (length, force, pressure, ...) is a closed enumeration of
// unit variants backed by a single data-driven table: per unit an
// abbreviation, the recognized text spellings, and a linear or affine
// transform to the category's standard unit. Quantities always store values
// in the standard unit; conversion happens only at the boundary.
//
// The typed API is generic over the per-category unit types (LengthUnit,
// PressureUnit, ...), so converting between units of different categories
// does not type-check. The untyped Category methods back the same tables for
// callers that resolve units at runtime, such as the phq CLI.
package unit

import (
	"github.com/acodcha/phq-sub004/dimension"
	phqerrors "github.com/acodcha/phq-sub004/internal/errors"
)

// Float constrains the numeric representation a quantity or conversion is
// parameterized over.
type Float interface {
	~float32 | ~float64
}

// Unit constrains the per-category unit enumerations. Every unit type is an
// integer index into its category's table and reports its category, which is
// what pins a quantity type to exactly one enumeration at compile time.
type Unit interface {
	~int
	Category() Category
}

// Category identifies one physical-quantity kind and its closed set of
// measurement units.
type Category int

// The supported unit categories. The catalog is deliberately non-exhaustive;
// each category carries the units in common engineering use.
const (
	Time Category = iota
	Length
	Mass
	Angle
	Area
	Volume
	Speed
	Acceleration
	Force
	Pressure
	Energy
	Power
	Frequency
	MassDensity
	Temperature
	TemperatureDifference
	DynamicViscosity
	SpecificHeatCapacity

	categoryCount // sentinel, keep last
)

// entry is one unit variant inside a category table. The transform to the
// standard unit is standard = value*scale + offset; offset is zero for every
// category except the affine temperature scales.
type entry struct {
	name         string
	abbreviation string
	spellings    []string
	scale        float64
	offset       float64
}

// table is the full metadata for one category. The entry order must match
// the iota order of the category's unit constants, and the standard entry
// must carry scale 1 and offset 0 so standard-unit conversion is exact.
type table struct {
	name      string
	dimension dimension.Dimension
	standard  int
	entries   []entry
}

var tables [categoryCount]*table

// register installs a category table. Called from the per-category file init
// functions; registering twice for one category is a programming error.
func register(c Category, t *table) {
	if tables[c] != nil {
		panic("unit: category registered twice: " + t.name)
	}
	tables[c] = t
}

func (c Category) table() *table {
	if c < 0 || c >= categoryCount {
		panic("unit: invalid category")
	}
	return tables[c]
}

// Categories returns all registered categories in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory resolves a category from its kebab-case name, e.g.
// "mass-density".
func ParseCategory(text string) (Category, error) {
	for c := Category(0); c < categoryCount; c++ {
		if c.table().name == text {
			return c, nil
		}
	}
	names := make([]string, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		names = append(names, c.table().name)
	}
	return 0, phqerrors.UnknownCategory(text, names)
}

// String returns the category's kebab-case name.
func (c Category) String() string { return c.table().name }

// Dimension returns the SI base-dimension signature shared by every unit in
// the category.
func (c Category) Dimension() dimension.Dimension { return c.table().dimension }

// Standard returns the index of the category's standard (internal storage)
// unit.
func (c Category) Standard() int { return c.table().standard }

// Count returns the number of unit variants in the category.
func (c Category) Count() int { return len(c.table().entries) }

// Name returns the descriptive name of the i-th unit, e.g. "kilopascal".
func (c Category) Name(i int) string { return c.table().entries[i].name }

// Abbreviation returns the fixed display string of the i-th unit, e.g. "kPa".
func (c Category) Abbreviation(i int) string { return c.table().entries[i].abbreviation }

// Spellings returns the text tokens recognized for the i-th unit. The first
// spelling is always the abbreviation.
func (c Category) Spellings(i int) []string {
	e := c.table().entries[i]
	out := make([]string, 0, len(e.spellings)+1)
	out = append(out, e.abbreviation)
	out = append(out, e.spellings...)
	return out
}

// Convert converts a value between two units of the category, by way of the
// standard unit. Converting a unit to itself returns the value unchanged.
func (c Category) Convert(value float64, from, to int) float64 {
	if from == to {
		return value
	}
	t := c.table()
	f, g := t.entries[from], t.entries[to]
	std := value
	if from != t.standard {
		std = value*f.scale + f.offset
	}
	if to == t.standard {
		return std
	}
	return (std - g.offset) / g.scale
}

// Parse resolves a unit index from one of its recognized spellings.
// Spellings are matched case-sensitively.
func (c Category) Parse(text string) (int, error) {
	t := c.table()
	for i, e := range t.entries {
		if e.abbreviation == text {
			return i, nil
		}
		for _, s := range e.spellings {
			if s == text {
				return i, nil
			}
		}
	}
	return 0, phqerrors.UnknownUnit(text, c.allSpellings())
}

func (c Category) allSpellings() []string {
	t := c.table()
	var out []string
	for _, e := range t.entries {
		out = append(out, e.abbreviation)
		out = append(out, e.spellings...)
	}
	return out
}

// Resolved identifies a unit found by Lookup: its category and the unit's
// index within that category.
type Resolved struct {
	Category Category
	Unit     int
}

// Lookup resolves a unit spelling across every registered category. When a
// spelling is shared between categories (e.g. "K" for temperature and
// temperature difference), the category declared first wins.
func Lookup(text string) (Resolved, error) {
	for c := Category(0); c < categoryCount; c++ {
		if i, err := c.Parse(text); err == nil {
			return Resolved{Category: c, Unit: i}, nil
		}
	}
	var all []string
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c.allSpellings()...)
	}
	return Resolved{}, phqerrors.UnknownUnit(text, all)
}

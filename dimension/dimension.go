// Package dimension provides the SI base-dimension signature shared by all
// measurement units within one physical-quantity category.
//
// A Dimension is a set of seven small integer exponents, one per SI base
// dimension: time (T), length (L), mass (M), electric current (I),
// temperature (Θ), amount of substance (N), and luminous intensity (J).
// Pressure, for example, carries the signature T^-2·L^-1·M.
//
// Dimensions are plain immutable values used for consistency metadata; they
// take no part in quantity arithmetic.
package dimension

import (
	"fmt"
	"strings"
)

// Dimension is the physical dimension of a unit category, expressed as the
// exponents of the seven SI base dimensions. The zero value is dimensionless.
type Dimension struct {
	Time              int8 `json:"time,omitempty"               yaml:"time,omitempty"`
	Length            int8 `json:"length,omitempty"             yaml:"length,omitempty"`
	Mass              int8 `json:"mass,omitempty"               yaml:"mass,omitempty"`
	ElectricCurrent   int8 `json:"electric_current,omitempty"   yaml:"electric_current,omitempty"`
	Temperature       int8 `json:"temperature,omitempty"        yaml:"temperature,omitempty"`
	SubstanceAmount   int8 `json:"substance_amount,omitempty"   yaml:"substance_amount,omitempty"`
	LuminousIntensity int8 `json:"luminous_intensity,omitempty" yaml:"luminous_intensity,omitempty"`
}

// Dimensionless is the dimension of pure numbers such as strain or the Mach
// number.
var Dimensionless = Dimension{}

// base-dimension symbols in conventional print order.
var symbols = [7]string{"T", "L", "M", "I", "Θ", "N", "J"}

// exponents returns the seven exponents in print order.
func (d Dimension) exponents() [7]int8 {
	return [7]int8{
		d.Time, d.Length, d.Mass, d.ElectricCurrent,
		d.Temperature, d.SubstanceAmount, d.LuminousIntensity,
	}
}

// IsDimensionless reports whether all seven exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// String returns the conventional symbolic form, e.g. "T^-2·L^-1·M" for
// pressure. A dimensionless signature prints as "1".
func (d Dimension) String() string {
	var parts []string
	for i, exp := range d.exponents() {
		switch {
		case exp == 0:
			continue
		case exp == 1:
			parts = append(parts, symbols[i])
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", symbols[i], exp))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

// MarshalText implements encoding.TextMarshaler using the String form, so a
// Dimension renders as its symbolic signature inside JSON and YAML documents.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

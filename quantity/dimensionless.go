package quantity

import (
	"fmt"

	"github.com/acodcha/phq-sub004/unit"
)

// Dimensionless is the wrapper for pure-number quantities such as the Mach
// number or scalar strain. It has no unit enumeration and no conversion
// surface.
type Dimensionless[T unit.Float] struct {
	value T
}

func dimensionlessOf[T unit.Float](value T) Dimensionless[T] {
	return Dimensionless[T]{value: value}
}

// Value returns the stored number.
func (d Dimensionless[T]) Value() T { return d.value }

// Set overwrites the stored number directly.
func (d *Dimensionless[T]) Set(value T) { d.value = value }

func (d Dimensionless[T]) add(o Dimensionless[T]) Dimensionless[T] {
	return Dimensionless[T]{d.value + o.value}
}

func (d Dimensionless[T]) sub(o Dimensionless[T]) Dimensionless[T] {
	return Dimensionless[T]{d.value - o.value}
}

func (d Dimensionless[T]) mul(k T) Dimensionless[T] { return Dimensionless[T]{d.value * k} }
func (d Dimensionless[T]) div(k T) Dimensionless[T] { return Dimensionless[T]{d.value / k} }

// String returns the bare number.
func (d Dimensionless[T]) String() string { return formatValue(d.value) }

// JSON returns a compact JSON object, e.g. {"value":0.8}.
func (d Dimensionless[T]) JSON() string {
	return fmt.Sprintf(`{"value":%s}`, formatValue(d.value))
}

// XML returns an XML fragment, e.g. <value>0.8</value>.
func (d Dimensionless[T]) XML() string {
	return fmt.Sprintf("<value>%s</value>", formatValue(d.value))
}

// YAML returns a YAML flow mapping, e.g. {value:0.8}.
func (d Dimensionless[T]) YAML() string {
	return fmt.Sprintf(`{value:%s}`, formatValue(d.value))
}

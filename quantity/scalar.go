package quantity

import (
	"encoding/json"
	"fmt"

	"github.com/acodcha/phq-sub004/internal/format"
	"github.com/acodcha/phq-sub004/unit"
)

// bitSizeOf reports the floating-point width of T for exact round-trip
// formatting. Named types defined over float32 format at 64 bits, which is
// lossless, merely longer.
func bitSizeOf[T unit.Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

func formatValue[T unit.Float](v T) string {
	return format.Number(float64(v), -1, bitSizeOf[T]())
}

// serialized is the structured wire form shared by the JSON and YAML
// marshalers of scalar quantities.
type serialized struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit"  yaml:"unit"`
}

// Scalar is the generic single-valued quantity wrapper. U pins the wrapper
// to one unit enumeration; T is the numeric representation. The stored value
// is always in U's standard unit.
type Scalar[U unit.Unit, T unit.Float] struct {
	value T
}

// newScalar constructs a scalar from a value expressed in u, converting to
// the standard unit immediately.
func newScalar[U unit.Unit, T unit.Float](value T, u U) Scalar[U, T] {
	return Scalar[U, T]{value: unit.ToStandard(value, u)}
}

// scalarOf constructs a scalar from a value already in the standard unit.
func scalarOf[U unit.Unit, T unit.Float](standard T) Scalar[U, T] {
	return Scalar[U, T]{value: standard}
}

// Value returns the stored value in the standard unit.
func (s Scalar[U, T]) Value() T { return s.value }

// In returns the value converted to u. The conversion is computed on each
// call.
func (s Scalar[U, T]) In(u U) T { return unit.FromStandard(s.value, u) }

// Set overwrites the stored standard-unit value directly, with no
// conversion or validation.
func (s *Scalar[U, T]) Set(standard T) { s.value = standard }

// arithmetic helpers, wrapped with typed signatures by the concrete types.

func (s Scalar[U, T]) add(o Scalar[U, T]) Scalar[U, T] { return Scalar[U, T]{s.value + o.value} }
func (s Scalar[U, T]) sub(o Scalar[U, T]) Scalar[U, T] { return Scalar[U, T]{s.value - o.value} }
func (s Scalar[U, T]) mul(k T) Scalar[U, T]            { return Scalar[U, T]{s.value * k} }
func (s Scalar[U, T]) div(k T) Scalar[U, T]            { return Scalar[U, T]{s.value / k} }

// String returns the value and abbreviation in the standard unit, e.g.
// "101325 Pa".
func (s Scalar[U, T]) String() string { return s.Print(unit.Standard[U]()) }

// Print returns the value converted to u followed by u's abbreviation.
func (s Scalar[U, T]) Print(u U) string {
	return formatValue(s.In(u)) + " " + unit.Abbreviation(u)
}

// JSON returns a compact JSON object of the value in u, e.g.
// {"value":101.325,"unit":"kPa"}.
func (s Scalar[U, T]) JSON(u U) string {
	return fmt.Sprintf(`{"value":%s,"unit":%q}`, formatValue(s.In(u)), unit.Abbreviation(u))
}

// XML returns an XML fragment of the value in u, e.g.
// <value>101.325</value><unit>kPa</unit>.
func (s Scalar[U, T]) XML(u U) string {
	return fmt.Sprintf("<value>%s</value><unit>%s</unit>", formatValue(s.In(u)), unit.Abbreviation(u))
}

// YAML returns a YAML flow mapping of the value in u, e.g.
// {value:101.325,unit:"kPa"}.
func (s Scalar[U, T]) YAML(u U) string {
	return fmt.Sprintf(`{value:%s,unit:%q}`, formatValue(s.In(u)), unit.Abbreviation(u))
}

// MarshalJSON implements json.Marshaler in the standard unit.
func (s Scalar[U, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(serialized{
		Value: float64(s.value),
		Unit:  unit.Abbreviation(unit.Standard[U]()),
	})
}

// UnmarshalJSON implements json.Unmarshaler. The unit field may be any
// recognized spelling of U's category; the value is converted to the
// standard unit on load.
func (s *Scalar[U, T]) UnmarshalJSON(data []byte) error {
	var raw serialized
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	s.value = unit.ToStandard(T(raw.Value), u)
	return nil
}

// MarshalYAML implements yaml.Marshaler in the standard unit.
func (s Scalar[U, T]) MarshalYAML() (interface{}, error) {
	return serialized{
		Value: float64(s.value),
		Unit:  unit.Abbreviation(unit.Standard[U]()),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same unit handling as
// UnmarshalJSON.
func (s *Scalar[U, T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw serialized
	if err := unmarshal(&raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	s.value = unit.ToStandard(T(raw.Value), u)
	return nil
}

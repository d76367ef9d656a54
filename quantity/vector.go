package quantity

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/acodcha/phq-sub004/unit"
)

// Vector is the generic three-dimensional quantity wrapper. Components are
// stored in U's standard unit. Vector categories are all linear, so
// component-wise conversion is well defined.
type Vector[U unit.Unit, T unit.Float] struct {
	x, y, z T
}

func newVector[U unit.Unit, T unit.Float](x, y, z T, u U) Vector[U, T] {
	return Vector[U, T]{
		x: unit.ToStandard(x, u),
		y: unit.ToStandard(y, u),
		z: unit.ToStandard(z, u),
	}
}

func vectorOf[U unit.Unit, T unit.Float](x, y, z T) Vector[U, T] {
	return Vector[U, T]{x: x, y: y, z: z}
}

// Value returns the components in the standard unit.
func (v Vector[U, T]) Value() (x, y, z T) { return v.x, v.y, v.z }

// In returns the components converted to u.
func (v Vector[U, T]) In(u U) (x, y, z T) {
	return unit.FromStandard(v.x, u), unit.FromStandard(v.y, u), unit.FromStandard(v.z, u)
}

// X returns the x component in the standard unit.
func (v Vector[U, T]) X() T { return v.x }

// Y returns the y component in the standard unit.
func (v Vector[U, T]) Y() T { return v.y }

// Z returns the z component in the standard unit.
func (v Vector[U, T]) Z() T { return v.z }

// Set overwrites the stored standard-unit components directly.
func (v *Vector[U, T]) Set(x, y, z T) { v.x, v.y, v.z = x, y, z }

func (v Vector[U, T]) add(o Vector[U, T]) Vector[U, T] {
	return Vector[U, T]{v.x + o.x, v.y + o.y, v.z + o.z}
}

func (v Vector[U, T]) sub(o Vector[U, T]) Vector[U, T] {
	return Vector[U, T]{v.x - o.x, v.y - o.y, v.z - o.z}
}

func (v Vector[U, T]) mul(k T) Vector[U, T] { return Vector[U, T]{v.x * k, v.y * k, v.z * k} }
func (v Vector[U, T]) div(k T) Vector[U, T] { return Vector[U, T]{v.x / k, v.y / k, v.z / k} }

func (v Vector[U, T]) dot(o Vector[U, T]) T {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func (v Vector[U, T]) cross(o Vector[U, T]) Vector[U, T] {
	return Vector[U, T]{
		x: v.y*o.z - v.z*o.y,
		y: v.z*o.x - v.x*o.z,
		z: v.x*o.y - v.y*o.x,
	}
}

func (v Vector[U, T]) magnitude() T {
	return T(math.Sqrt(float64(v.dot(v))))
}

// String returns the components and abbreviation in the standard unit, e.g.
// "(1, 2, 3) m".
func (v Vector[U, T]) String() string { return v.Print(unit.Standard[U]()) }

// Print returns the components converted to u followed by u's abbreviation.
func (v Vector[U, T]) Print(u U) string {
	x, y, z := v.In(u)
	return fmt.Sprintf("(%s, %s, %s) %s",
		formatValue(x), formatValue(y), formatValue(z), unit.Abbreviation(u))
}

// JSON returns a compact JSON object with named components, e.g.
// {"x":1,"y":2,"z":3,"unit":"m"}.
func (v Vector[U, T]) JSON(u U) string {
	x, y, z := v.In(u)
	return fmt.Sprintf(`{"x":%s,"y":%s,"z":%s,"unit":%q}`,
		formatValue(x), formatValue(y), formatValue(z), unit.Abbreviation(u))
}

// XML returns an XML fragment with named components.
func (v Vector[U, T]) XML(u U) string {
	x, y, z := v.In(u)
	return fmt.Sprintf("<x>%s</x><y>%s</y><z>%s</z><unit>%s</unit>",
		formatValue(x), formatValue(y), formatValue(z), unit.Abbreviation(u))
}

// YAML returns a YAML flow mapping with named components.
func (v Vector[U, T]) YAML(u U) string {
	x, y, z := v.In(u)
	return fmt.Sprintf(`{x:%s,y:%s,z:%s,unit:%q}`,
		formatValue(x), formatValue(y), formatValue(z), unit.Abbreviation(u))
}

// serializedVector is the structured wire form of a 3D vector quantity.
type serializedVector struct {
	X    float64 `json:"x"    yaml:"x"`
	Y    float64 `json:"y"    yaml:"y"`
	Z    float64 `json:"z"    yaml:"z"`
	Unit string  `json:"unit" yaml:"unit"`
}

// MarshalJSON implements json.Marshaler in the standard unit.
func (v Vector[U, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializedVector{
		X: float64(v.x), Y: float64(v.y), Z: float64(v.z),
		Unit: unit.Abbreviation(unit.Standard[U]()),
	})
}

// UnmarshalJSON implements json.Unmarshaler; the unit field may be any
// recognized spelling of U's category.
func (v *Vector[U, T]) UnmarshalJSON(data []byte) error {
	var raw serializedVector
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	*v = newVector[U](T(raw.X), T(raw.Y), T(raw.Z), u)
	return nil
}

// MarshalYAML implements yaml.Marshaler in the standard unit.
func (v Vector[U, T]) MarshalYAML() (interface{}, error) {
	return serializedVector{
		X: float64(v.x), Y: float64(v.y), Z: float64(v.z),
		Unit: unit.Abbreviation(unit.Standard[U]()),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same unit handling as
// UnmarshalJSON.
func (v *Vector[U, T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw serializedVector
	if err := unmarshal(&raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	*v = newVector[U](T(raw.X), T(raw.Y), T(raw.Z), u)
	return nil
}

package quantity

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/acodcha/phq-sub004/unit"
)

// PlanarVector is the generic two-dimensional quantity wrapper, for planar
// problems where the z component is identically zero by construction.
type PlanarVector[U unit.Unit, T unit.Float] struct {
	x, y T
}

func newPlanarVector[U unit.Unit, T unit.Float](x, y T, u U) PlanarVector[U, T] {
	return PlanarVector[U, T]{
		x: unit.ToStandard(x, u),
		y: unit.ToStandard(y, u),
	}
}

func planarVectorOf[U unit.Unit, T unit.Float](x, y T) PlanarVector[U, T] {
	return PlanarVector[U, T]{x: x, y: y}
}

// Value returns the components in the standard unit.
func (v PlanarVector[U, T]) Value() (x, y T) { return v.x, v.y }

// In returns the components converted to u.
func (v PlanarVector[U, T]) In(u U) (x, y T) {
	return unit.FromStandard(v.x, u), unit.FromStandard(v.y, u)
}

// X returns the x component in the standard unit.
func (v PlanarVector[U, T]) X() T { return v.x }

// Y returns the y component in the standard unit.
func (v PlanarVector[U, T]) Y() T { return v.y }

// Set overwrites the stored standard-unit components directly.
func (v *PlanarVector[U, T]) Set(x, y T) { v.x, v.y = x, y }

func (v PlanarVector[U, T]) add(o PlanarVector[U, T]) PlanarVector[U, T] {
	return PlanarVector[U, T]{v.x + o.x, v.y + o.y}
}

func (v PlanarVector[U, T]) sub(o PlanarVector[U, T]) PlanarVector[U, T] {
	return PlanarVector[U, T]{v.x - o.x, v.y - o.y}
}

func (v PlanarVector[U, T]) mul(k T) PlanarVector[U, T] { return PlanarVector[U, T]{v.x * k, v.y * k} }
func (v PlanarVector[U, T]) div(k T) PlanarVector[U, T] { return PlanarVector[U, T]{v.x / k, v.y / k} }

func (v PlanarVector[U, T]) magnitude() T {
	return T(math.Sqrt(float64(v.x*v.x + v.y*v.y)))
}

// String returns the components and abbreviation in the standard unit, e.g.
// "(1, 2) N".
func (v PlanarVector[U, T]) String() string { return v.Print(unit.Standard[U]()) }

// Print returns the components converted to u followed by u's abbreviation.
func (v PlanarVector[U, T]) Print(u U) string {
	x, y := v.In(u)
	return fmt.Sprintf("(%s, %s) %s", formatValue(x), formatValue(y), unit.Abbreviation(u))
}

// JSON returns a compact JSON object with named components.
func (v PlanarVector[U, T]) JSON(u U) string {
	x, y := v.In(u)
	return fmt.Sprintf(`{"x":%s,"y":%s,"unit":%q}`,
		formatValue(x), formatValue(y), unit.Abbreviation(u))
}

// XML returns an XML fragment with named components.
func (v PlanarVector[U, T]) XML(u U) string {
	x, y := v.In(u)
	return fmt.Sprintf("<x>%s</x><y>%s</y><unit>%s</unit>",
		formatValue(x), formatValue(y), unit.Abbreviation(u))
}

// YAML returns a YAML flow mapping with named components.
func (v PlanarVector[U, T]) YAML(u U) string {
	x, y := v.In(u)
	return fmt.Sprintf(`{x:%s,y:%s,unit:%q}`,
		formatValue(x), formatValue(y), unit.Abbreviation(u))
}

// serializedPlanar is the structured wire form of a 2D vector quantity.
type serializedPlanar struct {
	X    float64 `json:"x"    yaml:"x"`
	Y    float64 `json:"y"    yaml:"y"`
	Unit string  `json:"unit" yaml:"unit"`
}

// MarshalJSON implements json.Marshaler in the standard unit.
func (v PlanarVector[U, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializedPlanar{
		X: float64(v.x), Y: float64(v.y),
		Unit: unit.Abbreviation(unit.Standard[U]()),
	})
}

// UnmarshalJSON implements json.Unmarshaler; the unit field may be any
// recognized spelling of U's category.
func (v *PlanarVector[U, T]) UnmarshalJSON(data []byte) error {
	var raw serializedPlanar
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	*v = newPlanarVector[U](T(raw.X), T(raw.Y), u)
	return nil
}

// MarshalYAML implements yaml.Marshaler in the standard unit.
func (v PlanarVector[U, T]) MarshalYAML() (interface{}, error) {
	return serializedPlanar{
		X: float64(v.x), Y: float64(v.y),
		Unit: unit.Abbreviation(unit.Standard[U]()),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same unit handling as
// UnmarshalJSON.
func (v *PlanarVector[U, T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw serializedPlanar
	if err := unmarshal(&raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	*v = newPlanarVector[U](T(raw.X), T(raw.Y), u)
	return nil
}

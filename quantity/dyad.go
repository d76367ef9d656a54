package quantity

import (
	"encoding/json"
	"fmt"

	"github.com/acodcha/phq-sub004/unit"
)

// SymmetricDyad is the generic symmetric 3x3 tensor quantity wrapper, stored
// as its six independent components in U's standard unit:
//
//	xx xy xz
//	xy yy yz
//	xz yz zz
type SymmetricDyad[U unit.Unit, T unit.Float] struct {
	xx, xy, xz, yy, yz, zz T
}

func newSymmetricDyad[U unit.Unit, T unit.Float](xx, xy, xz, yy, yz, zz T, u U) SymmetricDyad[U, T] {
	return SymmetricDyad[U, T]{
		xx: unit.ToStandard(xx, u),
		xy: unit.ToStandard(xy, u),
		xz: unit.ToStandard(xz, u),
		yy: unit.ToStandard(yy, u),
		yz: unit.ToStandard(yz, u),
		zz: unit.ToStandard(zz, u),
	}
}

func symmetricDyadOf[U unit.Unit, T unit.Float](xx, xy, xz, yy, yz, zz T) SymmetricDyad[U, T] {
	return SymmetricDyad[U, T]{xx: xx, xy: xy, xz: xz, yy: yy, yz: yz, zz: zz}
}

// Value returns the six independent components in the standard unit, in
// xx, xy, xz, yy, yz, zz order.
func (d SymmetricDyad[U, T]) Value() (xx, xy, xz, yy, yz, zz T) {
	return d.xx, d.xy, d.xz, d.yy, d.yz, d.zz
}

// In returns the six independent components converted to u.
func (d SymmetricDyad[U, T]) In(u U) (xx, xy, xz, yy, yz, zz T) {
	return unit.FromStandard(d.xx, u), unit.FromStandard(d.xy, u), unit.FromStandard(d.xz, u),
		unit.FromStandard(d.yy, u), unit.FromStandard(d.yz, u), unit.FromStandard(d.zz, u)
}

// XX returns the xx component in the standard unit.
func (d SymmetricDyad[U, T]) XX() T { return d.xx }

// XY returns the xy component in the standard unit.
func (d SymmetricDyad[U, T]) XY() T { return d.xy }

// XZ returns the xz component in the standard unit.
func (d SymmetricDyad[U, T]) XZ() T { return d.xz }

// YX returns the yx component, equal to xy by symmetry.
func (d SymmetricDyad[U, T]) YX() T { return d.xy }

// YY returns the yy component in the standard unit.
func (d SymmetricDyad[U, T]) YY() T { return d.yy }

// YZ returns the yz component in the standard unit.
func (d SymmetricDyad[U, T]) YZ() T { return d.yz }

// ZX returns the zx component, equal to xz by symmetry.
func (d SymmetricDyad[U, T]) ZX() T { return d.xz }

// ZY returns the zy component, equal to yz by symmetry.
func (d SymmetricDyad[U, T]) ZY() T { return d.yz }

// ZZ returns the zz component in the standard unit.
func (d SymmetricDyad[U, T]) ZZ() T { return d.zz }

// Set overwrites the stored standard-unit components directly.
func (d *SymmetricDyad[U, T]) Set(xx, xy, xz, yy, yz, zz T) {
	d.xx, d.xy, d.xz, d.yy, d.yz, d.zz = xx, xy, xz, yy, yz, zz
}

func (d SymmetricDyad[U, T]) add(o SymmetricDyad[U, T]) SymmetricDyad[U, T] {
	return SymmetricDyad[U, T]{
		d.xx + o.xx, d.xy + o.xy, d.xz + o.xz,
		d.yy + o.yy, d.yz + o.yz, d.zz + o.zz,
	}
}

func (d SymmetricDyad[U, T]) sub(o SymmetricDyad[U, T]) SymmetricDyad[U, T] {
	return SymmetricDyad[U, T]{
		d.xx - o.xx, d.xy - o.xy, d.xz - o.xz,
		d.yy - o.yy, d.yz - o.yz, d.zz - o.zz,
	}
}

func (d SymmetricDyad[U, T]) mul(k T) SymmetricDyad[U, T] {
	return SymmetricDyad[U, T]{
		d.xx * k, d.xy * k, d.xz * k,
		d.yy * k, d.yz * k, d.zz * k,
	}
}

func (d SymmetricDyad[U, T]) div(k T) SymmetricDyad[U, T] {
	return SymmetricDyad[U, T]{
		d.xx / k, d.xy / k, d.xz / k,
		d.yy / k, d.yz / k, d.zz / k,
	}
}

// trace returns the sum of the diagonal components.
func (d SymmetricDyad[U, T]) trace() T { return d.xx + d.yy + d.zz }

// String returns the components and abbreviation in the standard unit, row
// by row with the symmetric lower triangle elided, e.g.
// "(8, 1, 2; 16, 4; 32) Pa".
func (d SymmetricDyad[U, T]) String() string { return d.Print(unit.Standard[U]()) }

// Print returns the components converted to u followed by u's abbreviation.
func (d SymmetricDyad[U, T]) Print(u U) string {
	xx, xy, xz, yy, yz, zz := d.In(u)
	return fmt.Sprintf("(%s, %s, %s; %s, %s; %s) %s",
		formatValue(xx), formatValue(xy), formatValue(xz),
		formatValue(yy), formatValue(yz), formatValue(zz), unit.Abbreviation(u))
}

// JSON returns a compact JSON object with named components, e.g.
// {"xx":8,"xy":1,"xz":2,"yy":16,"yz":4,"zz":32,"unit":"Pa"}.
func (d SymmetricDyad[U, T]) JSON(u U) string {
	xx, xy, xz, yy, yz, zz := d.In(u)
	return fmt.Sprintf(`{"xx":%s,"xy":%s,"xz":%s,"yy":%s,"yz":%s,"zz":%s,"unit":%q}`,
		formatValue(xx), formatValue(xy), formatValue(xz),
		formatValue(yy), formatValue(yz), formatValue(zz), unit.Abbreviation(u))
}

// XML returns an XML fragment with named components.
func (d SymmetricDyad[U, T]) XML(u U) string {
	xx, xy, xz, yy, yz, zz := d.In(u)
	return fmt.Sprintf("<xx>%s</xx><xy>%s</xy><xz>%s</xz><yy>%s</yy><yz>%s</yz><zz>%s</zz><unit>%s</unit>",
		formatValue(xx), formatValue(xy), formatValue(xz),
		formatValue(yy), formatValue(yz), formatValue(zz), unit.Abbreviation(u))
}

// YAML returns a YAML flow mapping with named components.
func (d SymmetricDyad[U, T]) YAML(u U) string {
	xx, xy, xz, yy, yz, zz := d.In(u)
	return fmt.Sprintf(`{xx:%s,xy:%s,xz:%s,yy:%s,yz:%s,zz:%s,unit:%q}`,
		formatValue(xx), formatValue(xy), formatValue(xz),
		formatValue(yy), formatValue(yz), formatValue(zz), unit.Abbreviation(u))
}

// serializedDyad is the structured wire form of a symmetric dyad quantity.
type serializedDyad struct {
	XX   float64 `json:"xx"   yaml:"xx"`
	XY   float64 `json:"xy"   yaml:"xy"`
	XZ   float64 `json:"xz"   yaml:"xz"`
	YY   float64 `json:"yy"   yaml:"yy"`
	YZ   float64 `json:"yz"   yaml:"yz"`
	ZZ   float64 `json:"zz"   yaml:"zz"`
	Unit string  `json:"unit" yaml:"unit"`
}

// MarshalJSON implements json.Marshaler in the standard unit.
func (d SymmetricDyad[U, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializedDyad{
		XX: float64(d.xx), XY: float64(d.xy), XZ: float64(d.xz),
		YY: float64(d.yy), YZ: float64(d.yz), ZZ: float64(d.zz),
		Unit: unit.Abbreviation(unit.Standard[U]()),
	})
}

// UnmarshalJSON implements json.Unmarshaler; the unit field may be any
// recognized spelling of U's category.
func (d *SymmetricDyad[U, T]) UnmarshalJSON(data []byte) error {
	var raw serializedDyad
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	*d = newSymmetricDyad[U](T(raw.XX), T(raw.XY), T(raw.XZ),
		T(raw.YY), T(raw.YZ), T(raw.ZZ), u)
	return nil
}

// MarshalYAML implements yaml.Marshaler in the standard unit.
func (d SymmetricDyad[U, T]) MarshalYAML() (interface{}, error) {
	return serializedDyad{
		XX: float64(d.xx), XY: float64(d.xy), XZ: float64(d.xz),
		YY: float64(d.yy), YZ: float64(d.yz), ZZ: float64(d.zz),
		Unit: unit.Abbreviation(unit.Standard[U]()),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same unit handling as
// UnmarshalJSON.
func (d *SymmetricDyad[U, T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw serializedDyad
	if err := unmarshal(&raw); err != nil {
		return err
	}
	u, err := unit.Parse[U](raw.Unit)
	if err != nil {
		return err
	}
	*d = newSymmetricDyad[U](T(raw.XX), T(raw.XY), T(raw.XZ),
		T(raw.YY), T(raw.YZ), T(raw.ZZ), u)
	return nil
}

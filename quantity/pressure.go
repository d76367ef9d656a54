package quantity

import (
	"math"

	"github.com/acodcha/phq-sub004/unit"
)

// StaticPressure is a scalar pressure quantity. The standard unit is the
// pascal.
type StaticPressure[T unit.Float] struct {
	Scalar[unit.PressureUnit, T]
}

// NewStaticPressure constructs a StaticPressure from a value expressed in u.
func NewStaticPressure[T unit.Float](value T, u unit.PressureUnit) StaticPressure[T] {
	return StaticPressure[T]{newScalar(value, u)}
}

// NewStandardStaticPressure constructs a StaticPressure from a value already
// in pascals.
func NewStandardStaticPressure[T unit.Float](value T) StaticPressure[T] {
	return StaticPressure[T]{scalarOf[unit.PressureUnit](value)}
}

// ZeroStaticPressure returns a zero-valued StaticPressure.
func ZeroStaticPressure[T unit.Float]() StaticPressure[T] { return StaticPressure[T]{} }

// StaticPressureFromForceAndArea constructs the pressure f/a.
func StaticPressureFromForceAndArea[T unit.Float](f ScalarForce[T], a Area[T]) StaticPressure[T] {
	return StaticPressure[T]{scalarOf[unit.PressureUnit](f.Value() / a.Value())}
}

// Add returns p + o.
func (p StaticPressure[T]) Add(o StaticPressure[T]) StaticPressure[T] {
	return StaticPressure[T]{p.Scalar.add(o.Scalar)}
}

// Sub returns p - o.
func (p StaticPressure[T]) Sub(o StaticPressure[T]) StaticPressure[T] {
	return StaticPressure[T]{p.Scalar.sub(o.Scalar)}
}

// MulScalar returns p scaled by k.
func (p StaticPressure[T]) MulScalar(k T) StaticPressure[T] {
	return StaticPressure[T]{p.Scalar.mul(k)}
}

// DivScalar returns p divided by k.
func (p StaticPressure[T]) DivScalar(k T) StaticPressure[T] {
	return StaticPressure[T]{p.Scalar.div(k)}
}

// MulArea returns the force p·a.
func (p StaticPressure[T]) MulArea(a Area[T]) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](p.Value() * a.Value())}
}

// ScalarStress is a scalar stress component or invariant. The standard unit
// is the pascal.
type ScalarStress[T unit.Float] struct {
	Scalar[unit.PressureUnit, T]
}

// NewScalarStress constructs a ScalarStress from a value expressed in u.
func NewScalarStress[T unit.Float](value T, u unit.PressureUnit) ScalarStress[T] {
	return ScalarStress[T]{newScalar(value, u)}
}

// NewStandardScalarStress constructs a ScalarStress from a value already in
// pascals.
func NewStandardScalarStress[T unit.Float](value T) ScalarStress[T] {
	return ScalarStress[T]{scalarOf[unit.PressureUnit](value)}
}

// ZeroScalarStress returns a zero-valued ScalarStress.
func ZeroScalarStress[T unit.Float]() ScalarStress[T] { return ScalarStress[T]{} }

// Add returns s + o.
func (s ScalarStress[T]) Add(o ScalarStress[T]) ScalarStress[T] {
	return ScalarStress[T]{s.Scalar.add(o.Scalar)}
}

// Sub returns s - o.
func (s ScalarStress[T]) Sub(o ScalarStress[T]) ScalarStress[T] {
	return ScalarStress[T]{s.Scalar.sub(o.Scalar)}
}

// MulScalar returns s scaled by k.
func (s ScalarStress[T]) MulScalar(k T) ScalarStress[T] { return ScalarStress[T]{s.Scalar.mul(k)} }

// DivScalar returns s divided by k.
func (s ScalarStress[T]) DivScalar(k T) ScalarStress[T] { return ScalarStress[T]{s.Scalar.div(k)} }

// Stress is the symmetric Cauchy stress tensor. The standard unit is the
// pascal.
type Stress[T unit.Float] struct {
	SymmetricDyad[unit.PressureUnit, T]
}

// NewStress constructs a Stress from components expressed in u, in
// xx, xy, xz, yy, yz, zz order.
func NewStress[T unit.Float](xx, xy, xz, yy, yz, zz T, u unit.PressureUnit) Stress[T] {
	return Stress[T]{newSymmetricDyad(xx, xy, xz, yy, yz, zz, u)}
}

// ZeroStress returns a zero-valued Stress.
func ZeroStress[T unit.Float]() Stress[T] { return Stress[T]{} }

// Add returns s + o.
func (s Stress[T]) Add(o Stress[T]) Stress[T] {
	return Stress[T]{s.SymmetricDyad.add(o.SymmetricDyad)}
}

// Sub returns s - o.
func (s Stress[T]) Sub(o Stress[T]) Stress[T] {
	return Stress[T]{s.SymmetricDyad.sub(o.SymmetricDyad)}
}

// MulScalar returns s scaled by k.
func (s Stress[T]) MulScalar(k T) Stress[T] { return Stress[T]{s.SymmetricDyad.mul(k)} }

// DivScalar returns s divided by k.
func (s Stress[T]) DivScalar(k T) Stress[T] { return Stress[T]{s.SymmetricDyad.div(k)} }

// Trace returns the first stress invariant, xx + yy + zz.
func (s Stress[T]) Trace() ScalarStress[T] {
	return ScalarStress[T]{scalarOf[unit.PressureUnit](s.trace())}
}

// Deviatoric returns the deviatoric part of s: the stress minus its mean
// normal stress, leaving a trace-free tensor with the same von Mises value.
func (s Stress[T]) Deviatoric() Stress[T] {
	m := s.trace() / 3
	return Stress[T]{symmetricDyadOf[unit.PressureUnit](
		s.xx-m, s.xy, s.xz, s.yy-m, s.yz, s.zz-m)}
}

// VonMises returns the von Mises equivalent stress,
//
//	sqrt(((xx-yy)^2 + (yy-zz)^2 + (zz-xx)^2 + 6(xy^2 + xz^2 + yz^2)) / 2).
func (s Stress[T]) VonMises() ScalarStress[T] {
	xx, xy, xz, yy, yz, zz := float64(s.xx), float64(s.xy), float64(s.xz),
		float64(s.yy), float64(s.yz), float64(s.zz)
	vm := math.Sqrt(0.5 * ((xx-yy)*(xx-yy) + (yy-zz)*(yy-zz) + (zz-xx)*(zz-xx) +
		6*(xy*xy+xz*xz+yz*yz)))
	return ScalarStress[T]{scalarOf[unit.PressureUnit](T(vm))}
}

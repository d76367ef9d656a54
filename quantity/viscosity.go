package quantity

import "github.com/acodcha/phq-sub004/unit"

// DynamicViscosity is a scalar dynamic-viscosity quantity. The standard unit
// is the pascal-second.
type DynamicViscosity[T unit.Float] struct {
	Scalar[unit.DynamicViscosityUnit, T]
}

// NewDynamicViscosity constructs a DynamicViscosity from a value expressed
// in u.
func NewDynamicViscosity[T unit.Float](value T, u unit.DynamicViscosityUnit) DynamicViscosity[T] {
	return DynamicViscosity[T]{newScalar(value, u)}
}

// NewStandardDynamicViscosity constructs a DynamicViscosity from a value
// already in pascal-seconds.
func NewStandardDynamicViscosity[T unit.Float](value T) DynamicViscosity[T] {
	return DynamicViscosity[T]{scalarOf[unit.DynamicViscosityUnit](value)}
}

// ZeroDynamicViscosity returns a zero-valued DynamicViscosity.
func ZeroDynamicViscosity[T unit.Float]() DynamicViscosity[T] { return DynamicViscosity[T]{} }

// DynamicViscosityFromShear constructs μ = τ/γ̇ from a shear stress and a
// shear rate.
func DynamicViscosityFromShear[T unit.Float](shearStress ScalarStress[T], shearRate Frequency[T]) DynamicViscosity[T] {
	return DynamicViscosity[T]{scalarOf[unit.DynamicViscosityUnit](shearStress.Value() / shearRate.Value())}
}

// Add returns v + o.
func (v DynamicViscosity[T]) Add(o DynamicViscosity[T]) DynamicViscosity[T] {
	return DynamicViscosity[T]{v.Scalar.add(o.Scalar)}
}

// Sub returns v - o.
func (v DynamicViscosity[T]) Sub(o DynamicViscosity[T]) DynamicViscosity[T] {
	return DynamicViscosity[T]{v.Scalar.sub(o.Scalar)}
}

// MulScalar returns v scaled by k.
func (v DynamicViscosity[T]) MulScalar(k T) DynamicViscosity[T] {
	return DynamicViscosity[T]{v.Scalar.mul(k)}
}

// DivScalar returns v divided by k.
func (v DynamicViscosity[T]) DivScalar(k T) DynamicViscosity[T] {
	return DynamicViscosity[T]{v.Scalar.div(k)}
}

// MulShearRate returns the shear stress μ·γ̇.
func (v DynamicViscosity[T]) MulShearRate(shearRate Frequency[T]) ScalarStress[T] {
	return ScalarStress[T]{scalarOf[unit.PressureUnit](v.Value() * shearRate.Value())}
}

package quantity

import "github.com/acodcha/phq-sub004/unit"

// Angle is a scalar plane-angle quantity. The standard unit is the radian.
type Angle[T unit.Float] struct {
	Scalar[unit.AngleUnit, T]
}

// NewAngle constructs an Angle from a value expressed in u.
func NewAngle[T unit.Float](value T, u unit.AngleUnit) Angle[T] {
	return Angle[T]{newScalar(value, u)}
}

// NewStandardAngle constructs an Angle from a value already in radians.
func NewStandardAngle[T unit.Float](value T) Angle[T] {
	return Angle[T]{scalarOf[unit.AngleUnit](value)}
}

// ZeroAngle returns a zero-valued Angle.
func ZeroAngle[T unit.Float]() Angle[T] { return Angle[T]{} }

// Add returns a + o.
func (a Angle[T]) Add(o Angle[T]) Angle[T] { return Angle[T]{a.Scalar.add(o.Scalar)} }

// Sub returns a - o.
func (a Angle[T]) Sub(o Angle[T]) Angle[T] { return Angle[T]{a.Scalar.sub(o.Scalar)} }

// MulScalar returns a scaled by k.
func (a Angle[T]) MulScalar(k T) Angle[T] { return Angle[T]{a.Scalar.mul(k)} }

// DivScalar returns a divided by k.
func (a Angle[T]) DivScalar(k T) Angle[T] { return Angle[T]{a.Scalar.div(k)} }

// Strain is a dimensionless scalar strain quantity.
type Strain[T unit.Float] struct {
	Dimensionless[T]
}

// NewStrain constructs a Strain from a raw value.
func NewStrain[T unit.Float](value T) Strain[T] {
	return Strain[T]{dimensionlessOf(value)}
}

// ZeroStrain returns a zero-valued Strain.
func ZeroStrain[T unit.Float]() Strain[T] { return Strain[T]{} }

// StrainFromLengths constructs the engineering strain Δl/l0.
func StrainFromLengths[T unit.Float](change, original Length[T]) Strain[T] {
	return Strain[T]{dimensionlessOf(change.Value() / original.Value())}
}

// Add returns s + o.
func (s Strain[T]) Add(o Strain[T]) Strain[T] { return Strain[T]{s.Dimensionless.add(o.Dimensionless)} }

// Sub returns s - o.
func (s Strain[T]) Sub(o Strain[T]) Strain[T] { return Strain[T]{s.Dimensionless.sub(o.Dimensionless)} }

// MulScalar returns s scaled by k.
func (s Strain[T]) MulScalar(k T) Strain[T] { return Strain[T]{s.Dimensionless.mul(k)} }

// DivScalar returns s divided by k.
func (s Strain[T]) DivScalar(k T) Strain[T] { return Strain[T]{s.Dimensionless.div(k)} }

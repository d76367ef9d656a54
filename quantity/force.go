package quantity

import "github.com/acodcha/phq-sub004/unit"

// ScalarForce is a scalar force magnitude. The standard unit is the newton.
type ScalarForce[T unit.Float] struct {
	Scalar[unit.ForceUnit, T]
}

// NewScalarForce constructs a ScalarForce from a value expressed in u.
func NewScalarForce[T unit.Float](value T, u unit.ForceUnit) ScalarForce[T] {
	return ScalarForce[T]{newScalar(value, u)}
}

// NewStandardScalarForce constructs a ScalarForce from a value already in
// newtons.
func NewStandardScalarForce[T unit.Float](value T) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](value)}
}

// ZeroScalarForce returns a zero-valued ScalarForce.
func ZeroScalarForce[T unit.Float]() ScalarForce[T] { return ScalarForce[T]{} }

// ScalarForceFromMassAndAcceleration constructs the force m·a.
func ScalarForceFromMassAndAcceleration[T unit.Float](m Mass[T], a ScalarAcceleration[T]) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](m.Value() * a.Value())}
}

// Add returns f + o.
func (f ScalarForce[T]) Add(o ScalarForce[T]) ScalarForce[T] {
	return ScalarForce[T]{f.Scalar.add(o.Scalar)}
}

// Sub returns f - o.
func (f ScalarForce[T]) Sub(o ScalarForce[T]) ScalarForce[T] {
	return ScalarForce[T]{f.Scalar.sub(o.Scalar)}
}

// MulScalar returns f scaled by k.
func (f ScalarForce[T]) MulScalar(k T) ScalarForce[T] { return ScalarForce[T]{f.Scalar.mul(k)} }

// DivScalar returns f divided by k.
func (f ScalarForce[T]) DivScalar(k T) ScalarForce[T] { return ScalarForce[T]{f.Scalar.div(k)} }

// DivArea returns the pressure f/a.
func (f ScalarForce[T]) DivArea(a Area[T]) StaticPressure[T] {
	return StaticPressure[T]{scalarOf[unit.PressureUnit](f.Value() / a.Value())}
}

// DivMass returns the acceleration f/m.
func (f ScalarForce[T]) DivMass(m Mass[T]) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{scalarOf[unit.AccelerationUnit](f.Value() / m.Value())}
}

// MulLength returns the energy (work) f·l.
func (f ScalarForce[T]) MulLength(l Length[T]) Energy[T] {
	return Energy[T]{scalarOf[unit.EnergyUnit](f.Value() * l.Value())}
}

// Force is a 3D force vector quantity. The standard unit is the newton.
type Force[T unit.Float] struct {
	Vector[unit.ForceUnit, T]
}

// NewForce constructs a Force from components expressed in u.
func NewForce[T unit.Float](x, y, z T, u unit.ForceUnit) Force[T] {
	return Force[T]{newVector(x, y, z, u)}
}

// ZeroForce returns a zero-valued Force.
func ZeroForce[T unit.Float]() Force[T] { return Force[T]{} }

// ForceFromTractionAndArea constructs the force t·a exerted by traction t
// acting over area a.
func ForceFromTractionAndArea[T unit.Float](tr Traction[T], a Area[T]) Force[T] {
	return Force[T]{vectorOf[unit.ForceUnit](tr.X()*a.Value(), tr.Y()*a.Value(), tr.Z()*a.Value())}
}

// Add returns f + o.
func (f Force[T]) Add(o Force[T]) Force[T] { return Force[T]{f.Vector.add(o.Vector)} }

// Sub returns f - o.
func (f Force[T]) Sub(o Force[T]) Force[T] { return Force[T]{f.Vector.sub(o.Vector)} }

// MulScalar returns f scaled by k.
func (f Force[T]) MulScalar(k T) Force[T] { return Force[T]{f.Vector.mul(k)} }

// DivScalar returns f divided by k.
func (f Force[T]) DivScalar(k T) Force[T] { return Force[T]{f.Vector.div(k)} }

// Magnitude returns the Euclidean norm of f as a ScalarForce.
func (f Force[T]) Magnitude() ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](f.magnitude())}
}

// DivArea returns the traction f/a.
func (f Force[T]) DivArea(a Area[T]) Traction[T] {
	return Traction[T]{vectorOf[unit.PressureUnit](f.X()/a.Value(), f.Y()/a.Value(), f.Z()/a.Value())}
}

// PlanarForce is a 2D force vector quantity for planar problems. The
// standard unit is the newton.
type PlanarForce[T unit.Float] struct {
	PlanarVector[unit.ForceUnit, T]
}

// NewPlanarForce constructs a PlanarForce from components expressed in u.
func NewPlanarForce[T unit.Float](x, y T, u unit.ForceUnit) PlanarForce[T] {
	return PlanarForce[T]{newPlanarVector(x, y, u)}
}

// ZeroPlanarForce returns a zero-valued PlanarForce.
func ZeroPlanarForce[T unit.Float]() PlanarForce[T] { return PlanarForce[T]{} }

// Add returns f + o.
func (f PlanarForce[T]) Add(o PlanarForce[T]) PlanarForce[T] {
	return PlanarForce[T]{f.PlanarVector.add(o.PlanarVector)}
}

// Sub returns f - o.
func (f PlanarForce[T]) Sub(o PlanarForce[T]) PlanarForce[T] {
	return PlanarForce[T]{f.PlanarVector.sub(o.PlanarVector)}
}

// MulScalar returns f scaled by k.
func (f PlanarForce[T]) MulScalar(k T) PlanarForce[T] {
	return PlanarForce[T]{f.PlanarVector.mul(k)}
}

// DivScalar returns f divided by k.
func (f PlanarForce[T]) DivScalar(k T) PlanarForce[T] {
	return PlanarForce[T]{f.PlanarVector.div(k)}
}

// Magnitude returns the Euclidean norm of f as a ScalarForce.
func (f PlanarForce[T]) Magnitude() ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](f.magnitude())}
}

// DivArea returns the planar traction f/a.
func (f PlanarForce[T]) DivArea(a Area[T]) PlanarTraction[T] {
	return PlanarTraction[T]{planarVectorOf[unit.PressureUnit](f.X()/a.Value(), f.Y()/a.Value())}
}

// Traction is the 3D force-per-area vector acting on a surface. The standard
// unit is the pascal.
type Traction[T unit.Float] struct {
	Vector[unit.PressureUnit, T]
}

// NewTraction constructs a Traction from components expressed in u.
func NewTraction[T unit.Float](x, y, z T, u unit.PressureUnit) Traction[T] {
	return Traction[T]{newVector(x, y, z, u)}
}

// ZeroTraction returns a zero-valued Traction.
func ZeroTraction[T unit.Float]() Traction[T] { return Traction[T]{} }

// TractionFromForceAndArea constructs the traction f/a.
func TractionFromForceAndArea[T unit.Float](f Force[T], a Area[T]) Traction[T] {
	return f.DivArea(a)
}

// Add returns t + o.
func (t Traction[T]) Add(o Traction[T]) Traction[T] { return Traction[T]{t.Vector.add(o.Vector)} }

// Sub returns t - o.
func (t Traction[T]) Sub(o Traction[T]) Traction[T] { return Traction[T]{t.Vector.sub(o.Vector)} }

// MulScalar returns t scaled by k.
func (t Traction[T]) MulScalar(k T) Traction[T] { return Traction[T]{t.Vector.mul(k)} }

// DivScalar returns t divided by k.
func (t Traction[T]) DivScalar(k T) Traction[T] { return Traction[T]{t.Vector.div(k)} }

// Magnitude returns the Euclidean norm of t as a StaticPressure.
func (t Traction[T]) Magnitude() StaticPressure[T] {
	return StaticPressure[T]{scalarOf[unit.PressureUnit](t.magnitude())}
}

// MulArea returns the force t·a.
func (t Traction[T]) MulArea(a Area[T]) Force[T] {
	return ForceFromTractionAndArea(t, a)
}

// PlanarTraction is the 2D force-per-area vector for planar problems. The
// standard unit is the pascal.
type PlanarTraction[T unit.Float] struct {
	PlanarVector[unit.PressureUnit, T]
}

// NewPlanarTraction constructs a PlanarTraction from components expressed in
// u.
func NewPlanarTraction[T unit.Float](x, y T, u unit.PressureUnit) PlanarTraction[T] {
	return PlanarTraction[T]{newPlanarVector(x, y, u)}
}

// ZeroPlanarTraction returns a zero-valued PlanarTraction.
func ZeroPlanarTraction[T unit.Float]() PlanarTraction[T] { return PlanarTraction[T]{} }

// Add returns t + o.
func (t PlanarTraction[T]) Add(o PlanarTraction[T]) PlanarTraction[T] {
	return PlanarTraction[T]{t.PlanarVector.add(o.PlanarVector)}
}

// Sub returns t - o.
func (t PlanarTraction[T]) Sub(o PlanarTraction[T]) PlanarTraction[T] {
	return PlanarTraction[T]{t.PlanarVector.sub(o.PlanarVector)}
}

// MulScalar returns t scaled by k.
func (t PlanarTraction[T]) MulScalar(k T) PlanarTraction[T] {
	return PlanarTraction[T]{t.PlanarVector.mul(k)}
}

// DivScalar returns t divided by k.
func (t PlanarTraction[T]) DivScalar(k T) PlanarTraction[T] {
	return PlanarTraction[T]{t.PlanarVector.div(k)}
}

// Magnitude returns the Euclidean norm of t as a StaticPressure.
func (t PlanarTraction[T]) Magnitude() StaticPressure[T] {
	return StaticPressure[T]{scalarOf[unit.PressureUnit](t.magnitude())}
}

// MulArea returns the planar force t·a.
func (t PlanarTraction[T]) MulArea(a Area[T]) PlanarForce[T] {
	return PlanarForce[T]{planarVectorOf[unit.ForceUnit](t.X()*a.Value(), t.Y()*a.Value())}
}

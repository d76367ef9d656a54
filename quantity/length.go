package quantity

import "github.com/acodcha/phq-sub004/unit"

// Length is a scalar length quantity. The standard unit is the metre.
type Length[T unit.Float] struct {
	Scalar[unit.LengthUnit, T]
}

// NewLength constructs a Length from a value expressed in u.
func NewLength[T unit.Float](value T, u unit.LengthUnit) Length[T] {
	return Length[T]{newScalar(value, u)}
}

// NewStandardLength constructs a Length from a value already in metres.
func NewStandardLength[T unit.Float](value T) Length[T] {
	return Length[T]{scalarOf[unit.LengthUnit](value)}
}

// ZeroLength returns a zero-valued Length, equal to the type's zero value.
func ZeroLength[T unit.Float]() Length[T] { return Length[T]{} }

// Add returns l + o.
func (l Length[T]) Add(o Length[T]) Length[T] { return Length[T]{l.Scalar.add(o.Scalar)} }

// Sub returns l - o.
func (l Length[T]) Sub(o Length[T]) Length[T] { return Length[T]{l.Scalar.sub(o.Scalar)} }

// MulScalar returns l scaled by k.
func (l Length[T]) MulScalar(k T) Length[T] { return Length[T]{l.Scalar.mul(k)} }

// DivScalar returns l divided by k.
func (l Length[T]) DivScalar(k T) Length[T] { return Length[T]{l.Scalar.div(k)} }

// MulLength returns the area l·o.
func (l Length[T]) MulLength(o Length[T]) Area[T] {
	return Area[T]{scalarOf[unit.AreaUnit](l.Value() * o.Value())}
}

// MulArea returns the volume l·a.
func (l Length[T]) MulArea(a Area[T]) Volume[T] {
	return Volume[T]{scalarOf[unit.VolumeUnit](l.Value() * a.Value())}
}

// DivTime returns the speed l/t.
func (l Length[T]) DivTime(t Time[T]) Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](l.Value() / t.Value())}
}

// Area is a scalar area quantity. The standard unit is the square metre.
type Area[T unit.Float] struct {
	Scalar[unit.AreaUnit, T]
}

// NewArea constructs an Area from a value expressed in u.
func NewArea[T unit.Float](value T, u unit.AreaUnit) Area[T] {
	return Area[T]{newScalar(value, u)}
}

// NewStandardArea constructs an Area from a value already in square metres.
func NewStandardArea[T unit.Float](value T) Area[T] {
	return Area[T]{scalarOf[unit.AreaUnit](value)}
}

// ZeroArea returns a zero-valued Area.
func ZeroArea[T unit.Float]() Area[T] { return Area[T]{} }

// AreaFromLengths constructs the area of a rectangle with the given side
// lengths.
func AreaFromLengths[T unit.Float](length, width Length[T]) Area[T] {
	return Area[T]{scalarOf[unit.AreaUnit](length.Value() * width.Value())}
}

// Add returns a + o.
func (a Area[T]) Add(o Area[T]) Area[T] { return Area[T]{a.Scalar.add(o.Scalar)} }

// Sub returns a - o.
func (a Area[T]) Sub(o Area[T]) Area[T] { return Area[T]{a.Scalar.sub(o.Scalar)} }

// MulScalar returns a scaled by k.
func (a Area[T]) MulScalar(k T) Area[T] { return Area[T]{a.Scalar.mul(k)} }

// DivScalar returns a divided by k.
func (a Area[T]) DivScalar(k T) Area[T] { return Area[T]{a.Scalar.div(k)} }

// MulLength returns the volume a·l.
func (a Area[T]) MulLength(l Length[T]) Volume[T] {
	return Volume[T]{scalarOf[unit.VolumeUnit](a.Value() * l.Value())}
}

// DivLength returns the length a/l.
func (a Area[T]) DivLength(l Length[T]) Length[T] {
	return Length[T]{scalarOf[unit.LengthUnit](a.Value() / l.Value())}
}

// MulPressure returns the force p·a exerted by pressure p acting on a.
func (a Area[T]) MulPressure(p StaticPressure[T]) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](a.Value() * p.Value())}
}

// Volume is a scalar volume quantity. The standard unit is the cubic metre.
type Volume[T unit.Float] struct {
	Scalar[unit.VolumeUnit, T]
}

// NewVolume constructs a Volume from a value expressed in u.
func NewVolume[T unit.Float](value T, u unit.VolumeUnit) Volume[T] {
	return Volume[T]{newScalar(value, u)}
}

// NewStandardVolume constructs a Volume from a value already in cubic
// metres.
func NewStandardVolume[T unit.Float](value T) Volume[T] {
	return Volume[T]{scalarOf[unit.VolumeUnit](value)}
}

// ZeroVolume returns a zero-valued Volume.
func ZeroVolume[T unit.Float]() Volume[T] { return Volume[T]{} }

// VolumeFromAreaAndLength constructs the volume of a prism with the given
// base area and height.
func VolumeFromAreaAndLength[T unit.Float](base Area[T], height Length[T]) Volume[T] {
	return Volume[T]{scalarOf[unit.VolumeUnit](base.Value() * height.Value())}
}

// Add returns v + o.
func (v Volume[T]) Add(o Volume[T]) Volume[T] { return Volume[T]{v.Scalar.add(o.Scalar)} }

// Sub returns v - o.
func (v Volume[T]) Sub(o Volume[T]) Volume[T] { return Volume[T]{v.Scalar.sub(o.Scalar)} }

// MulScalar returns v scaled by k.
func (v Volume[T]) MulScalar(k T) Volume[T] { return Volume[T]{v.Scalar.mul(k)} }

// DivScalar returns v divided by k.
func (v Volume[T]) DivScalar(k T) Volume[T] { return Volume[T]{v.Scalar.div(k)} }

// DivArea returns the length v/a.
func (v Volume[T]) DivArea(a Area[T]) Length[T] {
	return Length[T]{scalarOf[unit.LengthUnit](v.Value() / a.Value())}
}

// DivLength returns the area v/l.
func (v Volume[T]) DivLength(l Length[T]) Area[T] {
	return Area[T]{scalarOf[unit.AreaUnit](v.Value() / l.Value())}
}

// Displacement is a 3D displacement vector quantity. The standard unit is
// the metre.
type Displacement[T unit.Float] struct {
	Vector[unit.LengthUnit, T]
}

// NewDisplacement constructs a Displacement from components expressed in u.
func NewDisplacement[T unit.Float](x, y, z T, u unit.LengthUnit) Displacement[T] {
	return Displacement[T]{newVector(x, y, z, u)}
}

// ZeroDisplacement returns a zero-valued Displacement.
func ZeroDisplacement[T unit.Float]() Displacement[T] { return Displacement[T]{} }

// Add returns d + o.
func (d Displacement[T]) Add(o Displacement[T]) Displacement[T] {
	return Displacement[T]{d.Vector.add(o.Vector)}
}

// Sub returns d - o.
func (d Displacement[T]) Sub(o Displacement[T]) Displacement[T] {
	return Displacement[T]{d.Vector.sub(o.Vector)}
}

// MulScalar returns d scaled by k.
func (d Displacement[T]) MulScalar(k T) Displacement[T] {
	return Displacement[T]{d.Vector.mul(k)}
}

// DivScalar returns d divided by k.
func (d Displacement[T]) DivScalar(k T) Displacement[T] {
	return Displacement[T]{d.Vector.div(k)}
}

// Magnitude returns the Euclidean norm of d as a Length.
func (d Displacement[T]) Magnitude() Length[T] {
	return Length[T]{scalarOf[unit.LengthUnit](d.magnitude())}
}

// DivTime returns the velocity d/t.
func (d Displacement[T]) DivTime(t Time[T]) Velocity[T] {
	return Velocity[T]{vectorOf[unit.SpeedUnit](d.X()/t.Value(), d.Y()/t.Value(), d.Z()/t.Value())}
}

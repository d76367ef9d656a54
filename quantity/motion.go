package quantity

import "github.com/acodcha/phq-sub004/unit"

// Speed is a scalar speed quantity. The standard unit is the metre per
// second.
type Speed[T unit.Float] struct {
	Scalar[unit.SpeedUnit, T]
}

// NewSpeed constructs a Speed from a value expressed in u.
func NewSpeed[T unit.Float](value T, u unit.SpeedUnit) Speed[T] {
	return Speed[T]{newScalar(value, u)}
}

// NewStandardSpeed constructs a Speed from a value already in metres per
// second.
func NewStandardSpeed[T unit.Float](value T) Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](value)}
}

// ZeroSpeed returns a zero-valued Speed.
func ZeroSpeed[T unit.Float]() Speed[T] { return Speed[T]{} }

// SpeedFromLengthAndTime constructs the speed l/t.
func SpeedFromLengthAndTime[T unit.Float](l Length[T], t Time[T]) Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](l.Value() / t.Value())}
}

// SpeedFromMachNumber constructs the speed M·c given a Mach number and the
// local sound speed c.
func SpeedFromMachNumber[T unit.Float](mach MachNumber[T], soundSpeed Speed[T]) Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](mach.Value() * soundSpeed.Value())}
}

// Add returns s + o.
func (s Speed[T]) Add(o Speed[T]) Speed[T] { return Speed[T]{s.Scalar.add(o.Scalar)} }

// Sub returns s - o.
func (s Speed[T]) Sub(o Speed[T]) Speed[T] { return Speed[T]{s.Scalar.sub(o.Scalar)} }

// MulScalar returns s scaled by k.
func (s Speed[T]) MulScalar(k T) Speed[T] { return Speed[T]{s.Scalar.mul(k)} }

// DivScalar returns s divided by k.
func (s Speed[T]) DivScalar(k T) Speed[T] { return Speed[T]{s.Scalar.div(k)} }

// MulTime returns the length s·t.
func (s Speed[T]) MulTime(t Time[T]) Length[T] {
	return Length[T]{scalarOf[unit.LengthUnit](s.Value() * t.Value())}
}

// DivTime returns the acceleration s/t.
func (s Speed[T]) DivTime(t Time[T]) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{scalarOf[unit.AccelerationUnit](s.Value() / t.Value())}
}

// ScalarAcceleration is a scalar acceleration magnitude. The standard unit
// is the metre per square second.
type ScalarAcceleration[T unit.Float] struct {
	Scalar[unit.AccelerationUnit, T]
}

// NewScalarAcceleration constructs a ScalarAcceleration from a value
// expressed in u.
func NewScalarAcceleration[T unit.Float](value T, u unit.AccelerationUnit) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{newScalar(value, u)}
}

// NewStandardScalarAcceleration constructs a ScalarAcceleration from a value
// already in metres per square second.
func NewStandardScalarAcceleration[T unit.Float](value T) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{scalarOf[unit.AccelerationUnit](value)}
}

// ZeroScalarAcceleration returns a zero-valued ScalarAcceleration.
func ZeroScalarAcceleration[T unit.Float]() ScalarAcceleration[T] { return ScalarAcceleration[T]{} }

// ScalarAccelerationFromSpeedAndTime constructs the acceleration v/t.
func ScalarAccelerationFromSpeedAndTime[T unit.Float](v Speed[T], t Time[T]) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{scalarOf[unit.AccelerationUnit](v.Value() / t.Value())}
}

// Add returns a + o.
func (a ScalarAcceleration[T]) Add(o ScalarAcceleration[T]) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{a.Scalar.add(o.Scalar)}
}

// Sub returns a - o.
func (a ScalarAcceleration[T]) Sub(o ScalarAcceleration[T]) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{a.Scalar.sub(o.Scalar)}
}

// MulScalar returns a scaled by k.
func (a ScalarAcceleration[T]) MulScalar(k T) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{a.Scalar.mul(k)}
}

// DivScalar returns a divided by k.
func (a ScalarAcceleration[T]) DivScalar(k T) ScalarAcceleration[T] {
	return ScalarAcceleration[T]{a.Scalar.div(k)}
}

// MulTime returns the speed a·t.
func (a ScalarAcceleration[T]) MulTime(t Time[T]) Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](a.Value() * t.Value())}
}

// MulMass returns the force m·a.
func (a ScalarAcceleration[T]) MulMass(m Mass[T]) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](a.Value() * m.Value())}
}

// Velocity is a 3D velocity vector quantity. The standard unit is the metre
// per second.
type Velocity[T unit.Float] struct {
	Vector[unit.SpeedUnit, T]
}

// NewVelocity constructs a Velocity from components expressed in u.
func NewVelocity[T unit.Float](x, y, z T, u unit.SpeedUnit) Velocity[T] {
	return Velocity[T]{newVector(x, y, z, u)}
}

// ZeroVelocity returns a zero-valued Velocity.
func ZeroVelocity[T unit.Float]() Velocity[T] { return Velocity[T]{} }

// VelocityFromDisplacementAndTime constructs the velocity d/t.
func VelocityFromDisplacementAndTime[T unit.Float](d Displacement[T], t Time[T]) Velocity[T] {
	return d.DivTime(t)
}

// Add returns v + o.
func (v Velocity[T]) Add(o Velocity[T]) Velocity[T] { return Velocity[T]{v.Vector.add(o.Vector)} }

// Sub returns v - o.
func (v Velocity[T]) Sub(o Velocity[T]) Velocity[T] { return Velocity[T]{v.Vector.sub(o.Vector)} }

// MulScalar returns v scaled by k.
func (v Velocity[T]) MulScalar(k T) Velocity[T] { return Velocity[T]{v.Vector.mul(k)} }

// DivScalar returns v divided by k.
func (v Velocity[T]) DivScalar(k T) Velocity[T] { return Velocity[T]{v.Vector.div(k)} }

// Magnitude returns the Euclidean norm of v as a Speed.
func (v Velocity[T]) Magnitude() Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](v.magnitude())}
}

// MulTime returns the displacement v·t.
func (v Velocity[T]) MulTime(t Time[T]) Displacement[T] {
	return Displacement[T]{vectorOf[unit.LengthUnit](v.X()*t.Value(), v.Y()*t.Value(), v.Z()*t.Value())}
}

// Acceleration is a 3D acceleration vector quantity. The standard unit is
// the metre per square second.
type Acceleration[T unit.Float] struct {
	Vector[unit.AccelerationUnit, T]
}

// NewAcceleration constructs an Acceleration from components expressed in u.
func NewAcceleration[T unit.Float](x, y, z T, u unit.AccelerationUnit) Acceleration[T] {
	return Acceleration[T]{newVector(x, y, z, u)}
}

// ZeroAcceleration returns a zero-valued Acceleration.
func ZeroAcceleration[T unit.Float]() Acceleration[T] { return Acceleration[T]{} }

// AccelerationFromVelocityAndTime constructs the acceleration v/t.
func AccelerationFromVelocityAndTime[T unit.Float](v Velocity[T], t Time[T]) Acceleration[T] {
	return Acceleration[T]{vectorOf[unit.AccelerationUnit](v.X()/t.Value(), v.Y()/t.Value(), v.Z()/t.Value())}
}

// Add returns a + o.
func (a Acceleration[T]) Add(o Acceleration[T]) Acceleration[T] {
	return Acceleration[T]{a.Vector.add(o.Vector)}
}

// Sub returns a - o.
func (a Acceleration[T]) Sub(o Acceleration[T]) Acceleration[T] {
	return Acceleration[T]{a.Vector.sub(o.Vector)}
}

// MulScalar returns a scaled by k.
func (a Acceleration[T]) MulScalar(k T) Acceleration[T] { return Acceleration[T]{a.Vector.mul(k)} }

// DivScalar returns a divided by k.
func (a Acceleration[T]) DivScalar(k T) Acceleration[T] { return Acceleration[T]{a.Vector.div(k)} }

// Magnitude returns the Euclidean norm of a as a ScalarAcceleration.
func (a Acceleration[T]) Magnitude() ScalarAcceleration[T] {
	return ScalarAcceleration[T]{scalarOf[unit.AccelerationUnit](a.magnitude())}
}

// MachNumber is the dimensionless ratio of a speed to the local sound speed.
type MachNumber[T unit.Float] struct {
	Dimensionless[T]
}

// NewMachNumber constructs a MachNumber from a raw value.
func NewMachNumber[T unit.Float](value T) MachNumber[T] {
	return MachNumber[T]{dimensionlessOf(value)}
}

// ZeroMachNumber returns a zero-valued MachNumber.
func ZeroMachNumber[T unit.Float]() MachNumber[T] { return MachNumber[T]{} }

// MachNumberFromSpeeds constructs the Mach number v/c from a speed and the
// local sound speed c.
func MachNumberFromSpeeds[T unit.Float](speed, soundSpeed Speed[T]) MachNumber[T] {
	return MachNumber[T]{dimensionlessOf(speed.Value() / soundSpeed.Value())}
}

// MulSpeed returns the speed M·c given the local sound speed c.
func (m MachNumber[T]) MulSpeed(soundSpeed Speed[T]) Speed[T] {
	return Speed[T]{scalarOf[unit.SpeedUnit](m.Value() * soundSpeed.Value())}
}

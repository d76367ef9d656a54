package quantity

import "github.com/acodcha/phq-sub004/unit"

// Mass is a scalar mass quantity. The standard unit is the kilogram.
type Mass[T unit.Float] struct {
	Scalar[unit.MassUnit, T]
}

// NewMass constructs a Mass from a value expressed in u.
func NewMass[T unit.Float](value T, u unit.MassUnit) Mass[T] {
	return Mass[T]{newScalar(value, u)}
}

// NewStandardMass constructs a Mass from a value already in kilograms.
func NewStandardMass[T unit.Float](value T) Mass[T] {
	return Mass[T]{scalarOf[unit.MassUnit](value)}
}

// ZeroMass returns a zero-valued Mass.
func ZeroMass[T unit.Float]() Mass[T] { return Mass[T]{} }

// MassFromDensityAndVolume constructs the mass ρ·V.
func MassFromDensityAndVolume[T unit.Float](density MassDensity[T], volume Volume[T]) Mass[T] {
	return Mass[T]{scalarOf[unit.MassUnit](density.Value() * volume.Value())}
}

// Add returns m + o.
func (m Mass[T]) Add(o Mass[T]) Mass[T] { return Mass[T]{m.Scalar.add(o.Scalar)} }

// Sub returns m - o.
func (m Mass[T]) Sub(o Mass[T]) Mass[T] { return Mass[T]{m.Scalar.sub(o.Scalar)} }

// MulScalar returns m scaled by k.
func (m Mass[T]) MulScalar(k T) Mass[T] { return Mass[T]{m.Scalar.mul(k)} }

// DivScalar returns m divided by k.
func (m Mass[T]) DivScalar(k T) Mass[T] { return Mass[T]{m.Scalar.div(k)} }

// MulAcceleration returns the force m·a.
func (m Mass[T]) MulAcceleration(a ScalarAcceleration[T]) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](m.Value() * a.Value())}
}

// DivVolume returns the mass density m/V.
func (m Mass[T]) DivVolume(v Volume[T]) MassDensity[T] {
	return MassDensity[T]{scalarOf[unit.MassDensityUnit](m.Value() / v.Value())}
}

// MassDensity is a scalar mass-density quantity. The standard unit is the
// kilogram per cubic metre.
type MassDensity[T unit.Float] struct {
	Scalar[unit.MassDensityUnit, T]
}

// NewMassDensity constructs a MassDensity from a value expressed in u.
func NewMassDensity[T unit.Float](value T, u unit.MassDensityUnit) MassDensity[T] {
	return MassDensity[T]{newScalar(value, u)}
}

// NewStandardMassDensity constructs a MassDensity from a value already in
// kilograms per cubic metre.
func NewStandardMassDensity[T unit.Float](value T) MassDensity[T] {
	return MassDensity[T]{scalarOf[unit.MassDensityUnit](value)}
}

// ZeroMassDensity returns a zero-valued MassDensity.
func ZeroMassDensity[T unit.Float]() MassDensity[T] { return MassDensity[T]{} }

// MassDensityFromMassAndVolume constructs the density m/V.
func MassDensityFromMassAndVolume[T unit.Float](mass Mass[T], volume Volume[T]) MassDensity[T] {
	return MassDensity[T]{scalarOf[unit.MassDensityUnit](mass.Value() / volume.Value())}
}

// Add returns d + o.
func (d MassDensity[T]) Add(o MassDensity[T]) MassDensity[T] {
	return MassDensity[T]{d.Scalar.add(o.Scalar)}
}

// Sub returns d - o.
func (d MassDensity[T]) Sub(o MassDensity[T]) MassDensity[T] {
	return MassDensity[T]{d.Scalar.sub(o.Scalar)}
}

// MulScalar returns d scaled by k.
func (d MassDensity[T]) MulScalar(k T) MassDensity[T] { return MassDensity[T]{d.Scalar.mul(k)} }

// DivScalar returns d divided by k.
func (d MassDensity[T]) DivScalar(k T) MassDensity[T] { return MassDensity[T]{d.Scalar.div(k)} }

// MulVolume returns the mass d·V.
func (d MassDensity[T]) MulVolume(v Volume[T]) Mass[T] {
	return Mass[T]{scalarOf[unit.MassUnit](d.Value() * v.Value())}
}

package quantity

import "github.com/acodcha/phq-sub004/unit"

// Energy is a scalar energy quantity. The standard unit is the joule.
type Energy[T unit.Float] struct {
	Scalar[unit.EnergyUnit, T]
}

// NewEnergy constructs an Energy from a value expressed in u.
func NewEnergy[T unit.Float](value T, u unit.EnergyUnit) Energy[T] {
	return Energy[T]{newScalar(value, u)}
}

// NewStandardEnergy constructs an Energy from a value already in joules.
func NewStandardEnergy[T unit.Float](value T) Energy[T] {
	return Energy[T]{scalarOf[unit.EnergyUnit](value)}
}

// ZeroEnergy returns a zero-valued Energy.
func ZeroEnergy[T unit.Float]() Energy[T] { return Energy[T]{} }

// EnergyFromPowerAndTime constructs the energy P·t.
func EnergyFromPowerAndTime[T unit.Float](p Power[T], t Time[T]) Energy[T] {
	return Energy[T]{scalarOf[unit.EnergyUnit](p.Value() * t.Value())}
}

// EnergyFromForceAndLength constructs the work f·l.
func EnergyFromForceAndLength[T unit.Float](f ScalarForce[T], l Length[T]) Energy[T] {
	return Energy[T]{scalarOf[unit.EnergyUnit](f.Value() * l.Value())}
}

// EnergyFromHeating constructs the sensible heat m·c·ΔT required to change a
// mass's temperature.
func EnergyFromHeating[T unit.Float](m Mass[T], c SpecificHeatCapacity[T], dt TemperatureDifference[T]) Energy[T] {
	return Energy[T]{scalarOf[unit.EnergyUnit](m.Value() * c.Value() * dt.Value())}
}

// Add returns e + o.
func (e Energy[T]) Add(o Energy[T]) Energy[T] { return Energy[T]{e.Scalar.add(o.Scalar)} }

// Sub returns e - o.
func (e Energy[T]) Sub(o Energy[T]) Energy[T] { return Energy[T]{e.Scalar.sub(o.Scalar)} }

// MulScalar returns e scaled by k.
func (e Energy[T]) MulScalar(k T) Energy[T] { return Energy[T]{e.Scalar.mul(k)} }

// DivScalar returns e divided by k.
func (e Energy[T]) DivScalar(k T) Energy[T] { return Energy[T]{e.Scalar.div(k)} }

// DivTime returns the power e/t.
func (e Energy[T]) DivTime(t Time[T]) Power[T] {
	return Power[T]{scalarOf[unit.PowerUnit](e.Value() / t.Value())}
}

// DivLength returns the force e/l.
func (e Energy[T]) DivLength(l Length[T]) ScalarForce[T] {
	return ScalarForce[T]{scalarOf[unit.ForceUnit](e.Value() / l.Value())}
}

// Power is a scalar power quantity. The standard unit is the watt.
type Power[T unit.Float] struct {
	Scalar[unit.PowerUnit, T]
}

// NewPower constructs a Power from a value expressed in u.
func NewPower[T unit.Float](value T, u unit.PowerUnit) Power[T] {
	return Power[T]{newScalar(value, u)}
}

// NewStandardPower constructs a Power from a value already in watts.
func NewStandardPower[T unit.Float](value T) Power[T] {
	return Power[T]{scalarOf[unit.PowerUnit](value)}
}

// ZeroPower returns a zero-valued Power.
func ZeroPower[T unit.Float]() Power[T] { return Power[T]{} }

// PowerFromEnergyAndTime constructs the power e/t.
func PowerFromEnergyAndTime[T unit.Float](e Energy[T], t Time[T]) Power[T] {
	return Power[T]{scalarOf[unit.PowerUnit](e.Value() / t.Value())}
}

// Add returns p + o.
func (p Power[T]) Add(o Power[T]) Power[T] { return Power[T]{p.Scalar.add(o.Scalar)} }

// Sub returns p - o.
func (p Power[T]) Sub(o Power[T]) Power[T] { return Power[T]{p.Scalar.sub(o.Scalar)} }

// MulScalar returns p scaled by k.
func (p Power[T]) MulScalar(k T) Power[T] { return Power[T]{p.Scalar.mul(k)} }

// DivScalar returns p divided by k.
func (p Power[T]) DivScalar(k T) Power[T] { return Power[T]{p.Scalar.div(k)} }

// MulTime returns the energy p·t.
func (p Power[T]) MulTime(t Time[T]) Energy[T] {
	return Energy[T]{scalarOf[unit.EnergyUnit](p.Value() * t.Value())}
}

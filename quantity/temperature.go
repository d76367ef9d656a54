package quantity

import "github.com/acodcha/phq-sub004/unit"

// Temperature is a scalar absolute-temperature quantity. The standard unit
// is the kelvin. Temperature is the one affine category: constructing from
// or querying in Celsius or Fahrenheit applies an offset as well as a scale.
type Temperature[T unit.Float] struct {
	Scalar[unit.TemperatureUnit, T]
}

// NewTemperature constructs a Temperature from a value expressed in u.
func NewTemperature[T unit.Float](value T, u unit.TemperatureUnit) Temperature[T] {
	return Temperature[T]{newScalar(value, u)}
}

// NewStandardTemperature constructs a Temperature from a value already in
// kelvins.
func NewStandardTemperature[T unit.Float](value T) Temperature[T] {
	return Temperature[T]{scalarOf[unit.TemperatureUnit](value)}
}

// ZeroTemperature returns absolute zero.
func ZeroTemperature[T unit.Float]() Temperature[T] { return Temperature[T]{} }

// AddDifference returns the temperature t + Δ.
func (t Temperature[T]) AddDifference(d TemperatureDifference[T]) Temperature[T] {
	return Temperature[T]{scalarOf[unit.TemperatureUnit](t.Value() + d.Value())}
}

// SubDifference returns the temperature t - Δ.
func (t Temperature[T]) SubDifference(d TemperatureDifference[T]) Temperature[T] {
	return Temperature[T]{scalarOf[unit.TemperatureUnit](t.Value() - d.Value())}
}

// Sub returns the difference between two absolute temperatures. The affine
// offsets cancel, so the result is a linear quantity.
func (t Temperature[T]) Sub(o Temperature[T]) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[unit.TemperatureDifferenceUnit](t.Value() - o.Value())}
}

// TemperatureDifference is a scalar temperature-change quantity. The
// standard unit is the kelvin; all its units are purely linear.
type TemperatureDifference[T unit.Float] struct {
	Scalar[unit.TemperatureDifferenceUnit, T]
}

// NewTemperatureDifference constructs a TemperatureDifference from a value
// expressed in u.
func NewTemperatureDifference[T unit.Float](value T, u unit.TemperatureDifferenceUnit) TemperatureDifference[T] {
	return TemperatureDifference[T]{newScalar(value, u)}
}

// NewStandardTemperatureDifference constructs a TemperatureDifference from a
// value already in kelvins.
func NewStandardTemperatureDifference[T unit.Float](value T) TemperatureDifference[T] {
	return TemperatureDifference[T]{scalarOf[unit.TemperatureDifferenceUnit](value)}
}

// ZeroTemperatureDifference returns a zero-valued TemperatureDifference.
func ZeroTemperatureDifference[T unit.Float]() TemperatureDifference[T] {
	return TemperatureDifference[T]{}
}

// Add returns d + o.
func (d TemperatureDifference[T]) Add(o TemperatureDifference[T]) TemperatureDifference[T] {
	return TemperatureDifference[T]{d.Scalar.add(o.Scalar)}
}

// Sub returns d - o.
func (d TemperatureDifference[T]) Sub(o TemperatureDifference[T]) TemperatureDifference[T] {
	return TemperatureDifference[T]{d.Scalar.sub(o.Scalar)}
}

// MulScalar returns d scaled by k.
func (d TemperatureDifference[T]) MulScalar(k T) TemperatureDifference[T] {
	return TemperatureDifference[T]{d.Scalar.mul(k)}
}

// DivScalar returns d divided by k.
func (d TemperatureDifference[T]) DivScalar(k T) TemperatureDifference[T] {
	return TemperatureDifference[T]{d.Scalar.div(k)}
}

// SpecificHeatCapacity is a scalar specific-heat-capacity quantity. The
// standard unit is the joule per kilogram per kelvin.
type SpecificHeatCapacity[T unit.Float] struct {
	Scalar[unit.SpecificHeatCapacityUnit, T]
}

// NewSpecificHeatCapacity constructs a SpecificHeatCapacity from a value
// expressed in u.
func NewSpecificHeatCapacity[T unit.Float](value T, u unit.SpecificHeatCapacityUnit) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{newScalar(value, u)}
}

// NewStandardSpecificHeatCapacity constructs a SpecificHeatCapacity from a
// value already in joules per kilogram per kelvin.
func NewStandardSpecificHeatCapacity[T unit.Float](value T) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{scalarOf[unit.SpecificHeatCapacityUnit](value)}
}

// ZeroSpecificHeatCapacity returns a zero-valued SpecificHeatCapacity.
func ZeroSpecificHeatCapacity[T unit.Float]() SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{}
}

// SpecificHeatCapacityFromHeating constructs c = E/(m·ΔT) from a measured
// heat input, mass, and temperature change.
func SpecificHeatCapacityFromHeating[T unit.Float](e Energy[T], m Mass[T], dt TemperatureDifference[T]) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{scalarOf[unit.SpecificHeatCapacityUnit](e.Value() / (m.Value() * dt.Value()))}
}

// Add returns c + o.
func (c SpecificHeatCapacity[T]) Add(o SpecificHeatCapacity[T]) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{c.Scalar.add(o.Scalar)}
}

// Sub returns c - o.
func (c SpecificHeatCapacity[T]) Sub(o SpecificHeatCapacity[T]) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{c.Scalar.sub(o.Scalar)}
}

// MulScalar returns c scaled by k.
func (c SpecificHeatCapacity[T]) MulScalar(k T) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{c.Scalar.mul(k)}
}

// DivScalar returns c divided by k.
func (c SpecificHeatCapacity[T]) DivScalar(k T) SpecificHeatCapacity[T] {
	return SpecificHeatCapacity[T]{c.Scalar.div(k)}
}

package quantity

import "github.com/acodcha/phq-sub004/unit"

// Time is a scalar time-duration quantity. The standard unit is the second.
type Time[T unit.Float] struct {
	Scalar[unit.TimeUnit, T]
}

// NewTime constructs a Time from a value expressed in u.
func NewTime[T unit.Float](value T, u unit.TimeUnit) Time[T] {
	return Time[T]{newScalar(value, u)}
}

// NewStandardTime constructs a Time from a value already in seconds.
func NewStandardTime[T unit.Float](value T) Time[T] {
	return Time[T]{scalarOf[unit.TimeUnit](value)}
}

// ZeroTime returns a zero-valued Time.
func ZeroTime[T unit.Float]() Time[T] { return Time[T]{} }

// TimeFromFrequency constructs the period of the given frequency, 1/f.
func TimeFromFrequency[T unit.Float](f Frequency[T]) Time[T] {
	return Time[T]{scalarOf[unit.TimeUnit](1 / f.Value())}
}

// Add returns t + o.
func (t Time[T]) Add(o Time[T]) Time[T] { return Time[T]{t.Scalar.add(o.Scalar)} }

// Sub returns t - o.
func (t Time[T]) Sub(o Time[T]) Time[T] { return Time[T]{t.Scalar.sub(o.Scalar)} }

// MulScalar returns t scaled by k.
func (t Time[T]) MulScalar(k T) Time[T] { return Time[T]{t.Scalar.mul(k)} }

// DivScalar returns t divided by k.
func (t Time[T]) DivScalar(k T) Time[T] { return Time[T]{t.Scalar.div(k)} }

// Frequency is a scalar frequency quantity. The standard unit is the hertz.
type Frequency[T unit.Float] struct {
	Scalar[unit.FrequencyUnit, T]
}

// NewFrequency constructs a Frequency from a value expressed in u.
func NewFrequency[T unit.Float](value T, u unit.FrequencyUnit) Frequency[T] {
	return Frequency[T]{newScalar(value, u)}
}

// NewStandardFrequency constructs a Frequency from a value already in hertz.
func NewStandardFrequency[T unit.Float](value T) Frequency[T] {
	return Frequency[T]{scalarOf[unit.FrequencyUnit](value)}
}

// ZeroFrequency returns a zero-valued Frequency.
func ZeroFrequency[T unit.Float]() Frequency[T] { return Frequency[T]{} }

// FrequencyFromPeriod constructs the frequency of the given period, 1/t.
func FrequencyFromPeriod[T unit.Float](t Time[T]) Frequency[T] {
	return Frequency[T]{scalarOf[unit.FrequencyUnit](1 / t.Value())}
}

// Add returns f + o.
func (f Frequency[T]) Add(o Frequency[T]) Frequency[T] { return Frequency[T]{f.Scalar.add(o.Scalar)} }

// Sub returns f - o.
func (f Frequency[T]) Sub(o Frequency[T]) Frequency[T] { return Frequency[T]{f.Scalar.sub(o.Scalar)} }

// MulScalar returns f scaled by k.
func (f Frequency[T]) MulScalar(k T) Frequency[T] { return Frequency[T]{f.Scalar.mul(k)} }

// DivScalar returns f divided by k.
func (f Frequency[T]) DivScalar(k T) Frequency[T] { return Frequency[T]{f.Scalar.div(k)} }

// MulTime returns the dimensionless cycle count f·t.
func (f Frequency[T]) MulTime(t Time[T]) Dimensionless[T] {
	return dimensionlessOf(f.Value() * t.Value())
}

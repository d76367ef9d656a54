package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acodcha/phq-sub004/unit"
)

func TestPhysicsFormulaConsistency(t *testing.T) {
	t.Run("area from lengths", func(t *testing.T) {
		a := AreaFromLengths(NewLength[float64](2, unit.Metre), NewLength[float64](3, unit.Metre))
		assert.Equal(t, NewArea[float64](6, unit.SquareMetre), a)
	})

	t.Run("pressure from force and area", func(t *testing.T) {
		p := StaticPressureFromForceAndArea(
			NewScalarForce[float64](8, unit.Newton),
			NewArea[float64](4, unit.SquareMetre))
		assert.Equal(t, NewStaticPressure[float64](2, unit.Pascal), p)
	})

	t.Run("volume from area and length", func(t *testing.T) {
		v := VolumeFromAreaAndLength(
			NewArea[float64](6, unit.SquareMetre),
			NewLength[float64](0.5, unit.Metre))
		assert.Equal(t, NewVolume[float64](3, unit.CubicMetre), v)
	})

	t.Run("mass from density and volume", func(t *testing.T) {
		m := MassFromDensityAndVolume(
			NewMassDensity[float64](1000, unit.KilogramPerCubicMetre),
			NewVolume[float64](2, unit.CubicMetre))
		assert.Equal(t, NewMass[float64](2, unit.Tonne), m)
	})

	t.Run("force from mass and acceleration", func(t *testing.T) {
		f := ScalarForceFromMassAndAcceleration(
			NewMass[float64](10, unit.Kilogram),
			NewScalarAcceleration[float64](1, unit.StandardGravity))
		assert.InDelta(t, 98.0665, f.Value(), 1e-9)
	})

	t.Run("speed from length and time", func(t *testing.T) {
		v := SpeedFromLengthAndTime(
			NewLength[float64](100, unit.Metre),
			NewTime[float64](8, unit.Second))
		assert.Equal(t, NewSpeed[float64](12.5, unit.MetrePerSecond), v)
	})

	t.Run("power from energy and time", func(t *testing.T) {
		p := PowerFromEnergyAndTime(
			NewEnergy[float64](1, unit.KilowattHour),
			NewTime[float64](1, unit.Hour))
		assert.InDelta(t, 1000, p.Value(), 1e-9)
	})

	t.Run("frequency from period", func(t *testing.T) {
		f := FrequencyFromPeriod(NewTime[float64](20, unit.Millisecond))
		assert.InDelta(t, 50, f.Value(), 1e-9)
	})

	t.Run("mach number from speeds", func(t *testing.T) {
		m := MachNumberFromSpeeds(
			NewSpeed[float64](170, unit.MetrePerSecond),
			NewSpeed[float64](340, unit.MetrePerSecond))
		assert.Equal(t, 0.5, m.Value())
	})

	t.Run("heating energy", func(t *testing.T) {
		// Heating 2 kg of water by 10 K at 4184 J/(kg·K).
		e := EnergyFromHeating(
			NewMass[float64](2, unit.Kilogram),
			NewStandardSpecificHeatCapacity[float64](4184),
			NewTemperatureDifference[float64](10, unit.DeltaKelvin))
		assert.InDelta(t, 83680, e.Value(), 1e-9)
	})

	t.Run("strain from lengths", func(t *testing.T) {
		s := StrainFromLengths(NewLength[float64](1, unit.Millimetre), NewLength[float64](2, unit.Metre))
		assert.InDelta(t, 5e-4, s.Value(), 1e-15)
	})
}

func TestAlgebraicClosure(t *testing.T) {
	p := NewStaticPressure[float64](4, unit.Pascal)
	a := NewArea[float64](2, unit.SquareMetre)
	f := NewScalarForce[float64](8, unit.Newton)

	// Pressure × Area = Force and Force / Area = Pressure are mutually
	// consistent.
	assert.Equal(t, f, p.MulArea(a))
	assert.Equal(t, f, a.MulPressure(p))
	assert.Equal(t, p, f.DivArea(a))

	// Speed, time, length triangle.
	v := NewSpeed[float64](12.5, unit.MetrePerSecond)
	d := NewTime[float64](8, unit.Second)
	l := NewLength[float64](100, unit.Metre)
	assert.Equal(t, l, v.MulTime(d))
	assert.Equal(t, v, l.DivTime(d))

	// Energy, power, time triangle.
	e := NewEnergy[float64](600, unit.Joule)
	w := NewPower[float64](300, unit.Watt)
	s := NewTime[float64](2, unit.Second)
	assert.Equal(t, e, w.MulTime(s))
	assert.Equal(t, w, e.DivTime(s))

	// Work and force.
	assert.Equal(t, NewEnergy[float64](16, unit.Joule), f.MulLength(NewLength[float64](2, unit.Metre)))
}

func TestCrossUnitConstruction(t *testing.T) {
	// 1 lbf on 1 in^2 is 1 psi, regardless of construction units.
	p := StaticPressureFromForceAndArea(
		NewScalarForce[float64](1, unit.PoundForce),
		NewArea[float64](1, unit.SquareInch))
	assert.InDelta(t, 1, p.In(unit.PoundPerSquareInch), 1e-12)
}

func TestViscosityShear(t *testing.T) {
	mu := DynamicViscosityFromShear(
		NewScalarStress[float64](10, unit.Pascal),
		NewFrequency[float64](100, unit.Hertz))
	assert.Equal(t, NewStandardDynamicViscosity[float64](0.1), mu)
	assert.Equal(t, NewScalarStress[float64](10, unit.Pascal), mu.MulShearRate(NewFrequency[float64](100, unit.Hertz)))
}

func TestDivisionByZeroFollowsIEEE(t *testing.T) {
	p := StaticPressureFromForceAndArea(
		NewScalarForce[float64](1, unit.Newton),
		ZeroArea[float64]())
	assert.True(t, math.IsInf(p.Value(), 1), "expected +Inf")

	m := MachNumberFromSpeeds(ZeroSpeed[float64](), ZeroSpeed[float64]())
	assert.True(t, math.IsNaN(m.Value()), "expected NaN")
}

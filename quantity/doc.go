// Package quantity provides strongly typed physical quantities built on the
// unit package's conversion engine.
//
// Every quantity stores its value in its category's standard unit (metres,
// pascals, newtons, ...) and converts only at the boundary: on construction
// with a non-standard unit, or on an explicit In(unit) query. Quantities are
// plain values with no heap allocation or internal aliasing; copies are free
// and independent, so separate goroutines may hold separate copies without
// synchronization.
//
// Quantities come in four shapes: scalars, planar (2D) vectors, 3D vectors,
// and symmetric 3x3 dyads stored as their six independent components. Each
// concrete type (Length, Area, ScalarForce, Stress, ...) is a thin wrapper
// over one shape, pinned to one unit enumeration, with physics-formula
// constructors relating it to other quantities:
//
//	l := quantity.NewLength[float64](2, unit.Metre)
//	w := quantity.NewLength[float64](3, unit.Metre)
//	a := quantity.AreaFromLengths(l, w)         // 6 m^2
//	a.In(unit.SquareCentimetre)                 // 60000
//
// All types are generic over the floating-point representation. Arithmetic
// follows IEEE 754: dividing by a zero quantity yields an infinity or NaN,
// never a panic.
package quantity

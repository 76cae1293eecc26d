// Package astrokit carries astronomical measurements as values with
// uncertainty and unit: a nominal array, its 1-sigma uncertainty and a
// physical unit travel together through arithmetic, unit conversion and
// numeric-library functions.
//
// 🚀 What is in the box?
//
//	units/      : unit parsing, composition and conversion factors on gonum/unit dimensions
//	ndarray/    : immutable n-d float64 arrays: broadcasting, shape and selection, ufuncs
//	deriv/      : partial derivatives of binary operations and first-order error propagation
//	qfloat/     : QFloat, the quantity type, plus its numeric-library interop
//	photometry/ : flux and magnitude helpers built on QFloat
//	config/     : environment and YAML configuration for applications
//	logging/    : zap logger construction
//
// ✨ Guarantees
//
//   - Values are immutable; every operation returns a new value and values
//     are safe to share across goroutines.
//   - Unit mismatches fail eagerly with qfloat.ErrUnitIncompatible.
//   - Numeric degeneracy (log of zero, arcsin at ±1) never fails: it shows up
//     as NaN or +Inf uncertainty.
//   - Uncertainties are treated as uncorrelated; propagation is first order.
//
// Quick start:
//
//	a := qfloat.MustNew(1.0, 0.1, "")
//	b := qfloat.MustNew(2.0, 0.2, "")
//	c, _ := a.Add(b) // 3 ± 0.2236
//
//	ang := qfloat.MustNew(90.0, 0.05, "deg")
//	s, _ := ndarray.Sin(ang) // 1 ± 0, dimensionless
package astrokit

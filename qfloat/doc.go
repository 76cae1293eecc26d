// SPDX-License-Identifier: MIT

// Package qfloat provides QFloat, an array-capable physical quantity that
// carries nominal values, 1-sigma uncertainties and a unit through
// arithmetic, unit conversion and numeric-library functions.
//
// Uncertainties propagate to first order assuming uncorrelated inputs:
//
//	σ_f = sqrt((∂f/∂x · σx)² + (∂f/∂y · σy)²)
//
// Numeric degeneracy (a zero derivative denominator, log of zero, arcsin at
// ±1) is never an error: it shows up as NaN or +Inf uncertainty.
//
// Quick start:
//
//	a := qfloat.MustNew(1.0, 0.1, "")
//	b := qfloat.MustNew(2.0, 0.2, "")
//	c, _ := a.Add(b)          // 3 ± 0.2236
//	d, _ := qfloat.MustNew(180.0, 0.1, "deg").To("rad")
//	s, _ := ndarray.Sin(qfloat.MustNew(90.0, 0, "deg")) // 1 ± 0, dimensionless
//
// Configuration travels with values: a Factory built with options such as
// WithoutUncertainty or WithLogger stamps its settings on every value it
// creates and on every value derived from them.
package qfloat

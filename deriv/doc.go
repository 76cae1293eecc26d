// Package deriv computes partial derivatives of binary arithmetic operations
// and propagates 1-sigma uncertainties through them.
//
// The catalog covers add, sub, mul, div, truediv, floordiv, mod and pow.
// Partials are analytic where a closed form exists; the y-partial of mod and
// the x-partial of pow at a zero base with a non-integral exponent fall back
// to a central finite difference (gonum diff/fd) with a step relative to the
// variable's magnitude.
//
// Propagation assumes uncorrelated inputs:
//
//	σf = sqrt((∂f/∂x·σx)² + (∂f/∂y·σy)²)
//
// Numeric degeneracy (division by zero, overflow, log of a non-positive
// base) never fails a call: the affected element becomes NaN. A term whose
// uncertainty is exactly zero contributes nothing, even where its partial
// is not finite.
package deriv

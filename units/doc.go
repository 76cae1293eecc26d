// Package units describes physical units for quantities with uncertainty.
//
// A Unit is an immutable value: a display name, the scale factor to the
// coherent SI unit of its dimensions, and a gonum unit.Dimensions map.
// Besides the SI base dimensions it knows four astronomy-specific
// orthogonal dimensions (magnitude, ADU, electron, pixel), registered with
// unit.NewDimension at package init.
//
// Parse understands products and quotients such as "m/s", "km s^-1",
// "m s-1", "m2" and "m**2". Conversion factors come from Factor, which
// fails with ErrIncompatible when dimensions differ.
package units

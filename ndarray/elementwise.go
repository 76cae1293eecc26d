// SPDX-License-Identifier: MIT

// Package ndarray - element-wise kernels and reductions.
//
// Purpose:
//   - Map/Zip are the generic kernels; Round and Clip are the two parameterized
//     transforms every quantity type needs.
//   - Reductions delegate to gonum floats/stat.
//
// Complexity: all kernels are Time O(n), Space O(n).

package ndarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Map applies f to every element.
func (a *Array) Map(f func(float64) float64) *Array {
	data := make([]float64, len(a.data))
	for i, v := range a.data {
		data[i] = f(v)
	}

	return wrap(cloneInts(a.shape), data)
}

// Zip broadcasts a and b and applies f pairwise.
func (a *Array) Zip(b *Array, f func(x, y float64) float64) (*Array, error) {
	x, y, err := Broadcast2(a, b)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(x.data))
	for i := range data {
		data[i] = f(x.data[i], y.data[i])
	}

	return wrap(x.shape, data), nil
}

// Scale multiplies every element by c.
func (a *Array) Scale(c float64) *Array {
	data := make([]float64, len(a.data))
	floats.ScaleTo(data, c, a.data)

	return wrap(cloneInts(a.shape), data)
}

// Round rounds to the given number of decimals, halves to even.
// Negative decimals round to the left of the decimal point.
func (a *Array) Round(decimals int) *Array {
	return a.Map(func(v float64) float64 { return roundHalfEven(v, decimals) })
}

func roundHalfEven(v float64, decimals int) float64 {
	if decimals >= 0 {
		p := math.Pow(10, float64(decimals))
		return math.RoundToEven(v*p) / p
	}
	p := math.Pow(10, float64(-decimals))

	return math.RoundToEven(v/p) * p
}

// Clip limits every element to [lo, hi].
//
// Errors: ErrBadParam when a bound is NaN or lo > hi.
func (a *Array) Clip(lo, hi float64) (*Array, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return nil, arrayErrorf(ctxClip, fmt.Errorf("%w: clip bounds [%g, %g]", ErrBadParam, lo, hi))
	}

	return a.Map(func(v float64) float64 {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		default:
			return v
		}
	}), nil
}

// Sum returns the sum of all elements (0 for an empty array).
func (a *Array) Sum() float64 { return floats.Sum(a.data) }

// Mean returns the arithmetic mean (NaN for an empty array).
func (a *Array) Mean() float64 {
	if len(a.data) == 0 {
		return math.NaN()
	}

	return stat.Mean(a.data, nil)
}

// EqualApprox reports equal shapes and elements within an absolute tol.
func (a *Array) EqualApprox(b *Array, tol float64) bool {
	return equalInts(a.shape, b.shape) && floats.EqualApprox(a.data, b.data, tol)
}

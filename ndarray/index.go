// SPDX-License-Identifier: MIT

// Package ndarray - index arithmetic and validators.
//
// Purpose:
//   - Centralize shape/axis validation so every operation reports the same sentinels.
//   - Provide gather(), the single multi-index walker used by all shape and selection ops.

package ndarray

import "fmt"

// sizeOf returns prod(shape) or ErrBadShape on a negative extent.
func sizeOf(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative extent %d in %v", ErrBadShape, d, shape)
		}
		n *= d
	}

	return n, nil
}

// normalizeAxis maps axis in [-ndim, ndim) to [0, ndim).
func normalizeAxis(axis, ndim int) (int, error) {
	if axis < -ndim || axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d for %d dimensions", ErrAxis, axis, ndim)
	}
	if axis < 0 {
		axis += ndim
	}

	return axis, nil
}

// normalizeAxes normalizes every axis and rejects repeats.
func normalizeAxes(axes []int, ndim int) ([]int, error) {
	out := make([]int, len(axes))
	seen := make([]bool, ndim)
	for i, ax := range axes {
		n, err := normalizeAxis(ax, ndim)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			return nil, fmt.Errorf("%w: repeated axis %d", ErrAxis, ax)
		}
		seen[n] = true
		out[i] = n
	}

	return out, nil
}

// normalizeIndex maps i in [-n, n) to [0, n).
func normalizeIndex(i, n int) (int, error) {
	if i < -n || i >= n {
		return 0, fmt.Errorf("%w: index %d for extent %d", ErrOutOfRange, i, n)
	}
	if i < 0 {
		i += n
	}

	return i, nil
}

// stridesOf returns row-major element strides.
func stridesOf(shape []int) []int {
	st := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = s
		s *= shape[i]
	}

	return st
}

// gather builds a new array of outShape. For every output multi-index it asks
// mapIdx to fill the matching source multi-index, then copies that element.
//
// Implementation:
//   - Stage 1: allocate the output and a reusable (out, in) index pair.
//   - Stage 2: walk the output in row-major order with an odometer counter.
//
// Complexity: Time O(n*ndim), Space O(n).
func gather(src *Array, outShape []int, mapIdx func(out, in []int)) *Array {
	n := 1
	for _, d := range outShape {
		n *= d
	}
	data := make([]float64, n)
	if n == 0 {
		return wrap(outShape, data)
	}
	st := stridesOf(src.shape)
	out := make([]int, len(outShape))
	in := make([]int, len(src.shape))
	for k := 0; k < n; k++ {
		mapIdx(out, in)
		off := 0
		for ax, i := range in {
			off += i * st[ax]
		}
		data[k] = src.data[off]
		// odometer increment
		for ax := len(out) - 1; ax >= 0; ax-- {
			out[ax]++
			if out[ax] < outShape[ax] {
				break
			}
			out[ax] = 0
		}
	}

	return wrap(outShape, data)
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func cloneFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	if v != 0 {
		for i := range out {
			out[i] = v
		}
	}

	return out
}

// posMod returns i mod n in [0, n).
func posMod(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}

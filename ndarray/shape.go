// SPDX-License-Identifier: MIT

// Package ndarray - shape manipulation (reshape, axis permutation, unit axes).
//
// Every function here returns a fresh Array; data order follows numpy's
// C-order semantics so results match what astronomy pipelines expect.

package ndarray

import "fmt"

// Reshape returns the same elements under a new shape. At most one extent
// may be -1; it is inferred from the remaining ones.
//
// Errors: ErrBadShape (negative extent other than a single -1, or -1 next to
// a zero extent), ErrShapeMismatch (sizes differ).
func (a *Array) Reshape(shape ...int) (*Array, error) {
	out := cloneInts(shape)
	infer := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, arrayErrorf(ctxReshape, fmt.Errorf("%w: %v", ErrBadShape, shape))
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 {
			return nil, arrayErrorf(ctxReshape, fmt.Errorf("%w: cannot infer -1 in %v", ErrBadShape, shape))
		}
		out[infer] = len(a.data) / known
		known *= out[infer]
	}
	if known != len(a.data) {
		return nil, arrayErrorf(ctxReshape, fmt.Errorf("%w: cannot reshape %d elements into %v", ErrShapeMismatch, len(a.data), shape))
	}

	return wrap(out, cloneFloats(a.data)), nil
}

// Ravel returns a 1-d copy in row-major order.
func (a *Array) Ravel() *Array {
	return wrap([]int{len(a.data)}, cloneFloats(a.data))
}

// Transpose permutes the axes. With no arguments the axis order is reversed.
// Otherwise axes must be a permutation of [0, ndim) (negatives allowed).
func (a *Array) Transpose(axes ...int) (*Array, error) {
	nd := len(a.shape)
	if len(axes) == 0 {
		axes = make([]int, nd)
		for i := range axes {
			axes[i] = nd - 1 - i
		}
	}
	if len(axes) != nd {
		return nil, arrayErrorf(ctxTranspose, fmt.Errorf("%w: %d axes for %d dimensions", ErrAxis, len(axes), nd))
	}
	perm, err := normalizeAxes(axes, nd)
	if err != nil {
		return nil, arrayErrorf(ctxTranspose, err)
	}

	return a.permute(perm), nil
}

// permute assumes perm is a valid permutation.
func (a *Array) permute(perm []int) *Array {
	outShape := make([]int, len(perm))
	for i, p := range perm {
		outShape[i] = a.shape[p]
	}

	return gather(a, outShape, func(out, in []int) {
		for i, p := range perm {
			in[p] = out[i]
		}
	})
}

// SwapAxes interchanges two axes.
func (a *Array) SwapAxes(a1, a2 int) (*Array, error) {
	nd := len(a.shape)
	x, err := normalizeAxis(a1, nd)
	if err != nil {
		return nil, arrayErrorf(ctxTranspose, err)
	}
	y, err := normalizeAxis(a2, nd)
	if err != nil {
		return nil, arrayErrorf(ctxTranspose, err)
	}
	perm := identityPerm(nd)
	perm[x], perm[y] = perm[y], perm[x]

	return a.permute(perm), nil
}

// MoveAxis moves each source axis to its destination position; the other
// axes keep their relative order.
//
// Implementation:
//   - Stage 1: order = axes not listed in source, ascending.
//   - Stage 2: insert every source axis at its destination, by ascending destination.
func (a *Array) MoveAxis(source, destination []int) (*Array, error) {
	nd := len(a.shape)
	if len(source) != len(destination) {
		return nil, arrayErrorf(ctxMoveAxis, fmt.Errorf("%w: %d sources for %d destinations", ErrAxis, len(source), len(destination)))
	}
	src, err := normalizeAxes(source, nd)
	if err != nil {
		return nil, arrayErrorf(ctxMoveAxis, err)
	}
	dst, err := normalizeAxes(destination, nd)
	if err != nil {
		return nil, arrayErrorf(ctxMoveAxis, err)
	}
	moved := make([]bool, nd)
	for _, s := range src {
		moved[s] = true
	}
	order := make([]int, 0, nd)
	for ax := 0; ax < nd; ax++ {
		if !moved[ax] {
			order = append(order, ax)
		}
	}
	// destinations are distinct, so walking 0..nd-1 is the sorted order
	for d := 0; d < nd; d++ {
		for k, dd := range dst {
			if dd == d {
				order = insertInt(order, d, src[k])
			}
		}
	}

	return a.permute(order), nil
}

// RollAxis rolls axis backwards until it lies at position start.
// start may be in [-ndim, ndim]; the semantics follow numpy.rollaxis.
func (a *Array) RollAxis(axis, start int) (*Array, error) {
	nd := len(a.shape)
	ax, err := normalizeAxis(axis, nd)
	if err != nil {
		return nil, arrayErrorf(ctxRollAxis, err)
	}
	if start < 0 {
		start += nd
	}
	if start < 0 || start > nd {
		return nil, arrayErrorf(ctxRollAxis, fmt.Errorf("%w: start %d for %d dimensions", ErrAxis, start, nd))
	}
	if ax < start {
		start--
	}
	order := make([]int, 0, nd)
	for i := 0; i < nd; i++ {
		if i != ax {
			order = append(order, i)
		}
	}
	order = insertInt(order, start, ax)

	return a.permute(order), nil
}

// ExpandDims inserts unit axes at the given positions of the result.
// Positions refer to the output rank (ndim + len(axes)).
func (a *Array) ExpandDims(axes ...int) (*Array, error) {
	if len(axes) == 0 {
		return nil, arrayErrorf(ctxExpandDims, fmt.Errorf("%w: no axis given", ErrAxis))
	}
	outNd := len(a.shape) + len(axes)
	pos, err := normalizeAxes(axes, outNd)
	if err != nil {
		return nil, arrayErrorf(ctxExpandDims, err)
	}
	unit := make([]bool, outNd)
	for _, p := range pos {
		unit[p] = true
	}
	shape := make([]int, outNd)
	j := 0
	for i := range shape {
		if unit[i] {
			shape[i] = 1
			continue
		}
		shape[i] = a.shape[j]
		j++
	}

	return wrap(shape, cloneFloats(a.data)), nil
}

// Squeeze removes unit axes. With no arguments every unit axis is removed;
// otherwise each named axis must have extent 1 (ErrAxis if not).
func (a *Array) Squeeze(axes ...int) (*Array, error) {
	nd := len(a.shape)
	drop := make([]bool, nd)
	if len(axes) == 0 {
		for i, d := range a.shape {
			drop[i] = d == 1
		}
	} else {
		pos, err := normalizeAxes(axes, nd)
		if err != nil {
			return nil, arrayErrorf(ctxSqueeze, err)
		}
		for _, p := range pos {
			if a.shape[p] != 1 {
				return nil, arrayErrorf(ctxSqueeze, fmt.Errorf("%w: cannot squeeze axis %d of extent %d", ErrAxis, p, a.shape[p]))
			}
			drop[p] = true
		}
	}
	shape := make([]int, 0, nd)
	for i, d := range a.shape {
		if !drop[i] {
			shape = append(shape, d)
		}
	}

	return wrap(shape, cloneFloats(a.data)), nil
}

// Resize returns an array of the new shape filled cyclically with the
// elements in row-major order. An empty source fills with zeros.
func (a *Array) Resize(shape ...int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxResize, err)
	}
	data := make([]float64, n)
	if m := len(a.data); m > 0 {
		for i := range data {
			data[i] = a.data[i%m]
		}
	}

	return wrap(cloneInts(shape), data), nil
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// insertInt inserts v at position i (0 <= i <= len(s)).
func insertInt(s []int, i, v int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

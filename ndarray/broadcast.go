// SPDX-License-Identifier: MIT

// Package ndarray - broadcasting.
//
// Shapes are aligned on their trailing axes; two extents are compatible when
// they are equal or one of them is 1.

package ndarray

import "fmt"

// BroadcastShapes returns the common shape of a and b or ErrShapeMismatch.
func BroadcastShapes(a, b []int) ([]int, error) {
	nd := len(a)
	if len(b) > nd {
		nd = len(b)
	}
	pa, pb := padLeft(a, nd), padLeft(b, nd)
	out := make([]int, nd)
	for i := range out {
		switch {
		case pa[i] == pb[i]:
			out[i] = pa[i]
		case pa[i] == 1:
			out[i] = pb[i]
		case pb[i] == 1:
			out[i] = pa[i]
		default:
			return nil, fmt.Errorf("%w: shapes %v and %v do not broadcast", ErrShapeMismatch, a, b)
		}
	}

	return out, nil
}

// BroadcastTo expands a to shape. a must broadcast to exactly that shape.
func (a *Array) BroadcastTo(shape ...int) (*Array, error) {
	common, err := BroadcastShapes(a.shape, shape)
	if err != nil || !equalInts(common, shape) {
		return nil, arrayErrorf(ctxBroadcast, fmt.Errorf("%w: cannot broadcast %v to %v", ErrShapeMismatch, a.shape, shape))
	}
	if equalInts(a.shape, shape) {
		return wrap(cloneInts(shape), cloneFloats(a.data)), nil
	}
	off := len(shape) - len(a.shape)

	return gather(a, cloneInts(shape), func(out, in []int) {
		for i := range in {
			if a.shape[i] == 1 {
				in[i] = 0
			} else {
				in[i] = out[i+off]
			}
		}
	}), nil
}

// Broadcast2 expands a and b to their common shape.
func Broadcast2(a, b *Array) (*Array, *Array, error) {
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, nil, arrayErrorf(ctxBroadcast, err)
	}
	x, err := a.BroadcastTo(shape...)
	if err != nil {
		return nil, nil, err
	}
	y, err := b.BroadcastTo(shape...)
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}

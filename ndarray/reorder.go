// SPDX-License-Identifier: MIT

// Package ndarray - element reordering (flip, roll, rotate, tile, repeat).

package ndarray

import "fmt"

// Flip reverses element order along the given axes (all axes when none).
func (a *Array) Flip(axes ...int) (*Array, error) {
	nd := len(a.shape)
	var pos []int
	if len(axes) == 0 {
		pos = identityPerm(nd)
	} else {
		var err error
		if pos, err = normalizeAxes(axes, nd); err != nil {
			return nil, arrayErrorf(ctxFlip, err)
		}
	}
	rev := make([]bool, nd)
	for _, p := range pos {
		rev[p] = true
	}

	return gather(a, cloneInts(a.shape), func(out, in []int) {
		for ax, i := range out {
			if rev[ax] {
				in[ax] = a.shape[ax] - 1 - i
			} else {
				in[ax] = i
			}
		}
	}), nil
}

// FlipLR flips along axis 1 (columns); needs at least 2 dimensions.
func (a *Array) FlipLR() (*Array, error) {
	if len(a.shape) < 2 {
		return nil, arrayErrorf(ctxFlip, fmt.Errorf("%w: fliplr needs ndim >= 2", ErrAxis))
	}

	return a.Flip(1)
}

// FlipUD flips along axis 0 (rows); needs at least 1 dimension.
func (a *Array) FlipUD() (*Array, error) {
	if len(a.shape) < 1 {
		return nil, arrayErrorf(ctxFlip, fmt.Errorf("%w: flipud needs ndim >= 1", ErrAxis))
	}

	return a.Flip(0)
}

// Roll shifts elements by shift positions along each given axis, wrapping
// around. With no axes the array is rolled as if flattened and the
// original shape is restored.
func (a *Array) Roll(shift int, axes ...int) (*Array, error) {
	if len(axes) == 0 {
		n := len(a.data)
		data := make([]float64, n)
		for i := range data {
			data[i] = a.data[posMod(i-shift, n)]
		}
		return wrap(cloneInts(a.shape), data), nil
	}
	pos, err := normalizeAxes(axes, len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxRoll, err)
	}
	shifted := make([]bool, len(a.shape))
	for _, p := range pos {
		shifted[p] = true
	}

	return gather(a, cloneInts(a.shape), func(out, in []int) {
		for ax, i := range out {
			if shifted[ax] {
				in[ax] = posMod(i-shift, a.shape[ax])
			} else {
				in[ax] = i
			}
		}
	}), nil
}

// Rot90 rotates by 90 degrees k times in the plane of axes (a0, a1); the
// direction is from the first towards the second axis.
//
// Implementation (numpy.rot90):
//   - k%4==0: copy; k%4==2: flip both axes.
//   - k%4==1: transpose(flip(m, a1)); k%4==3: flip(transpose(m), a1), with a0/a1 swapped in the permutation.
func (a *Array) Rot90(k, a0, a1 int) (*Array, error) {
	nd := len(a.shape)
	if nd < 2 {
		return nil, arrayErrorf(ctxRot90, fmt.Errorf("%w: rot90 needs ndim >= 2", ErrAxis))
	}
	ax, err := normalizeAxes([]int{a0, a1}, nd)
	if err != nil {
		return nil, arrayErrorf(ctxRot90, err)
	}
	x, y := ax[0], ax[1]
	perm := identityPerm(nd)
	perm[x], perm[y] = perm[y], perm[x]

	switch posMod(k, 4) {
	case 0:
		return wrap(cloneInts(a.shape), cloneFloats(a.data)), nil
	case 2:
		return a.Flip(x, y)
	case 1:
		f, err := a.Flip(y)
		if err != nil {
			return nil, err
		}
		return f.permute(perm), nil
	default:
		return a.permute(perm).Flip(y)
	}
}

// Tile repeats the whole array reps times along each axis. When reps and
// the shape differ in length, the shorter one is padded with leading 1s.
func (a *Array) Tile(reps ...int) (*Array, error) {
	for _, r := range reps {
		if r < 0 {
			return nil, arrayErrorf(ctxTile, fmt.Errorf("%w: negative repetition %d", ErrBadParam, r))
		}
	}
	nd := len(a.shape)
	if len(reps) > nd {
		nd = len(reps)
	}
	shape := padLeft(a.shape, nd)
	r := padLeft(reps, nd)
	outShape := make([]int, nd)
	for i := range outShape {
		outShape[i] = shape[i] * r[i]
	}
	src := wrap(shape, a.data)

	return gather(src, outShape, func(out, in []int) {
		for i, o := range out {
			in[i] = o % shape[i]
		}
	}), nil
}

// Repeat repeats each element n times. With no axis the input is flattened
// first; with one axis the repetition happens along it.
func (a *Array) Repeat(n int, axes ...int) (*Array, error) {
	if n < 0 {
		return nil, arrayErrorf(ctxRepeat, fmt.Errorf("%w: negative repeat count %d", ErrBadParam, n))
	}
	if len(axes) > 1 {
		return nil, arrayErrorf(ctxRepeat, fmt.Errorf("%w: at most one axis", ErrAxis))
	}
	src := a
	ax := 0
	if len(axes) == 0 {
		src = a.Ravel()
	} else {
		var err error
		if ax, err = normalizeAxis(axes[0], len(a.shape)); err != nil {
			return nil, arrayErrorf(ctxRepeat, err)
		}
	}
	outShape := cloneInts(src.shape)
	outShape[ax] *= n

	return gather(src, outShape, func(out, in []int) {
		copy(in, out)
		in[ax] = out[ax] / n
	}), nil
}

// padLeft prepends 1s to s up to length n.
func padLeft(s []int, n int) []int {
	out := make([]int, n)
	off := n - len(s)
	for i := range out {
		if i < off {
			out[i] = 1
		} else {
			out[i] = s[i-off]
		}
	}

	return out
}

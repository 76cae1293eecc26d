// SPDX-License-Identifier: MIT

// Package ndarray - selection and combination (index, slice, take, delete,
// insert, append, concatenate).
//
// AI-Hints:
//   - Without an axis, Take/Delete/Insert/Append operate on the flattened array (numpy semantics).
//   - Concatenate copies contiguous blocks; it is the primitive behind Append and Insert.

package ndarray

import "fmt"

// Index selects position i along axis 0, dropping that axis.
// Negative i counts from the end.
func (a *Array) Index(i int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, arrayErrorf(ctxIndex, fmt.Errorf("%w: cannot index a 0-d array", ErrAxis))
	}
	i, err := normalizeIndex(i, a.shape[0])
	if err != nil {
		return nil, arrayErrorf(ctxIndex, err)
	}
	block := len(a.data)
	if a.shape[0] > 0 {
		block /= a.shape[0]
	}

	return wrap(cloneInts(a.shape[1:]), cloneFloats(a.data[i*block:(i+1)*block])), nil
}

// SliceAxis selects start:stop:step along one axis with Python slice
// semantics: negative bounds count from the end and out-of-range bounds clamp.
func (a *Array) SliceAxis(axis, start, stop, step int) (*Array, error) {
	ax, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxSlice, err)
	}
	if step == 0 {
		return nil, arrayErrorf(ctxSlice, fmt.Errorf("%w: slice step cannot be zero", ErrBadParam))
	}

	return a.takeAxis(sliceIndices(start, stop, step, a.shape[ax]), ax), nil
}

// sliceIndices mirrors Python's slice.indices followed by range().
func sliceIndices(start, stop, step, n int) []int {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(v int) int {
		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}
		} else if v > upper {
			v = upper
		}
		return v
	}
	start, stop = clamp(start), clamp(stop)
	var idx []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		idx = append(idx, i)
	}

	return idx
}

// Take selects elements by position. Without an axis the array is
// flattened first; with one axis whole slices are picked along it.
// Negative positions count from the end.
func (a *Array) Take(indices []int, axes ...int) (*Array, error) {
	src, ax, err := a.axisSource(axes)
	if err != nil {
		return nil, arrayErrorf(ctxTake, err)
	}
	idx := make([]int, len(indices))
	for k, i := range indices {
		if idx[k], err = normalizeIndex(i, src.shape[ax]); err != nil {
			return nil, arrayErrorf(ctxTake, err)
		}
	}

	return src.takeAxis(idx, ax), nil
}

// Delete removes the given positions (flattened when no axis is given).
// Repeated positions are removed once.
func (a *Array) Delete(indices []int, axes ...int) (*Array, error) {
	src, ax, err := a.axisSource(axes)
	if err != nil {
		return nil, arrayErrorf(ctxDelete, err)
	}
	n := src.shape[ax]
	drop := make([]bool, n)
	for _, i := range indices {
		j, err := normalizeIndex(i, n)
		if err != nil {
			return nil, arrayErrorf(ctxDelete, err)
		}
		drop[j] = true
	}
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}

	return src.takeAxis(keep, ax), nil
}

// Insert places values before position index. Without an axis both arrays
// are flattened. Along an axis, a one-element values array is broadcast to
// a single slot; values with one dimension fewer fill one slot; values of
// full rank are broadcast against the other axes.
func (a *Array) Insert(index int, values *Array, axes ...int) (*Array, error) {
	if len(axes) == 0 {
		flat := a.Ravel()
		i, err := insertPosition(index, len(flat.data))
		if err != nil {
			return nil, arrayErrorf(ctxInsert, err)
		}
		data := make([]float64, 0, len(flat.data)+len(values.data))
		data = append(data, flat.data[:i]...)
		data = append(data, values.data...)
		data = append(data, flat.data[i:]...)
		return wrap([]int{len(data)}, data), nil
	}
	if len(axes) > 1 {
		return nil, arrayErrorf(ctxInsert, fmt.Errorf("%w: at most one axis", ErrAxis))
	}
	ax, err := normalizeAxis(axes[0], len(a.shape))
	if err != nil {
		return nil, arrayErrorf(ctxInsert, err)
	}
	i, err := insertPosition(index, a.shape[ax])
	if err != nil {
		return nil, arrayErrorf(ctxInsert, err)
	}

	target := cloneInts(a.shape)
	var slot *Array
	switch {
	case len(values.data) == 1:
		target[ax] = 1
		slot = wrap(target, fill(sizeOfUnchecked(target), values.data[0]))
	case values.Ndim() == a.Ndim()-1:
		target[ax] = 1
		expanded, err := values.ExpandDims(ax)
		if err != nil {
			return nil, arrayErrorf(ctxInsert, err)
		}
		if slot, err = expanded.BroadcastTo(target...); err != nil {
			return nil, arrayErrorf(ctxInsert, err)
		}
	case values.Ndim() == a.Ndim():
		target[ax] = values.shape[ax]
		if slot, err = values.BroadcastTo(target...); err != nil {
			return nil, arrayErrorf(ctxInsert, err)
		}
	default:
		return nil, arrayErrorf(ctxInsert, fmt.Errorf("%w: cannot insert shape %v into %v", ErrShapeMismatch, values.shape, a.shape))
	}

	head := a.takeAxis(identityPerm(i), ax)
	tailIdx := make([]int, 0, a.shape[ax]-i)
	for j := i; j < a.shape[ax]; j++ {
		tailIdx = append(tailIdx, j)
	}
	tail := a.takeAxis(tailIdx, ax)

	return Concatenate([]*Array{head, slot, tail}, ax)
}

// insertPosition accepts positions in [-n, n].
func insertPosition(i, n int) (int, error) {
	if i < -n || i > n {
		return 0, fmt.Errorf("%w: insert position %d for extent %d", ErrOutOfRange, i, n)
	}
	if i < 0 {
		i += n
	}

	return i, nil
}

// Append joins values after a. Without an axis both are flattened.
func (a *Array) Append(values *Array, axes ...int) (*Array, error) {
	if len(axes) == 0 {
		return Concatenate([]*Array{a.Ravel(), values.Ravel()}, 0)
	}
	if len(axes) > 1 {
		return nil, arrayErrorf(ctxConcatenate, fmt.Errorf("%w: at most one axis", ErrAxis))
	}

	return Concatenate([]*Array{a, values}, axes[0])
}

// Concatenate joins arrays along an existing axis. All inputs need the same
// rank (at least 1) and identical extents on every other axis.
//
// Implementation:
//   - Stage 1: validate ranks and extents; compute the output shape.
//   - Stage 2: for each outer index, copy each input's contiguous block.
//
// Complexity: Time O(n), Space O(n).
func Concatenate(arrays []*Array, axis int) (*Array, error) {
	if len(arrays) == 0 {
		return nil, arrayErrorf(ctxConcatenate, fmt.Errorf("%w: need at least one array", ErrBadParam))
	}
	first := arrays[0]
	nd := len(first.shape)
	if nd == 0 {
		return nil, arrayErrorf(ctxConcatenate, fmt.Errorf("%w: zero-dimensional arrays cannot be concatenated", ErrShapeMismatch))
	}
	ax, err := normalizeAxis(axis, nd)
	if err != nil {
		return nil, arrayErrorf(ctxConcatenate, err)
	}
	outShape := cloneInts(first.shape)
	outShape[ax] = 0
	for k, arr := range arrays {
		if len(arr.shape) != nd {
			return nil, arrayErrorf(ctxConcatenate, fmt.Errorf("%w: array %d has %d dimensions, want %d", ErrShapeMismatch, k, len(arr.shape), nd))
		}
		for i, d := range arr.shape {
			if i != ax && d != first.shape[i] {
				return nil, arrayErrorf(ctxConcatenate, fmt.Errorf("%w: array %d has shape %v, want %v off axis %d", ErrShapeMismatch, k, arr.shape, first.shape, ax))
			}
		}
		outShape[ax] += arr.shape[ax]
	}

	outer := 1
	for _, d := range first.shape[:ax] {
		outer *= d
	}
	inner := 1
	for _, d := range first.shape[ax+1:] {
		inner *= d
	}
	data := make([]float64, 0, sizeOfUnchecked(outShape))
	for o := 0; o < outer; o++ {
		for _, arr := range arrays {
			block := arr.shape[ax] * inner
			data = append(data, arr.data[o*block:(o+1)*block]...)
		}
	}

	return wrap(outShape, data), nil
}

// axisSource resolves the optional single axis of Take/Delete: no axis
// means the flattened array along axis 0.
func (a *Array) axisSource(axes []int) (*Array, int, error) {
	switch len(axes) {
	case 0:
		return a.Ravel(), 0, nil
	case 1:
		ax, err := normalizeAxis(axes[0], len(a.shape))
		return a, ax, err
	default:
		return nil, 0, fmt.Errorf("%w: at most one axis", ErrAxis)
	}
}

// takeAxis picks already-normalized positions along ax.
func (a *Array) takeAxis(idx []int, ax int) *Array {
	outShape := cloneInts(a.shape)
	outShape[ax] = len(idx)

	return gather(a, outShape, func(out, in []int) {
		copy(in, out)
		in[ax] = idx[out[ax]]
	})
}

func sizeOfUnchecked(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// SPDX-License-Identifier: MIT

// Package ndarray - immutable n-dimensional storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with explicit strides for any rank (0-d scalars included).
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep every value immutable: operations allocate, nothing is ever written after construction.
//
// AI-Hints:
//   - Hot loops operate on the flat data slice directly; multi-index walks go through gather().
//   - Zero-size axes are legal; a shape with a 0 extent has Size()==0 and an empty buffer.
//
// Complexity quicksheet:
//   - New/From: O(n) copy; Shape/Ndim/Size: O(1); At: O(ndim); Data: O(n).

package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// Array is an immutable n-dimensional float64 array.
//   - shape holds the extent of every axis; len(shape)==0 is a 0-d scalar.
//   - data is a flat buffer of length prod(shape) in row-major order.
//
// The zero value is not usable; build arrays with the constructors.
type Array struct {
	shape []int
	data  []float64
}

// New returns an array of the given shape holding a copy of data.
//
// Implementation:
//   - Stage 1: validate the shape (no negative extents) and compute its size.
//   - Stage 2: require len(data)==size and copy both slices.
//
// Errors: ErrBadShape, ErrShapeMismatch.
//
// Complexity: Time O(n), Space O(n).
func New(shape []int, data []float64) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	if len(data) != n {
		return nil, arrayErrorf(ctxNew, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(data), shape))
	}

	return &Array{shape: cloneInts(shape), data: cloneFloats(data)}, nil
}

// wrap takes ownership of shape and data without validation.
// Callers guarantee len(data)==prod(shape).
func wrap(shape []int, data []float64) *Array {
	if shape == nil {
		shape = []int{}
	}

	return &Array{shape: shape, data: data}
}

// Scalar returns a 0-d array holding v.
func Scalar(v float64) *Array {
	return wrap([]int{}, []float64{v})
}

// FromSlice returns a 1-d array holding a copy of v.
func FromSlice(v []float64) *Array {
	return wrap([]int{len(v)}, cloneFloats(v))
}

// FromRows returns a 2-d array from equal-length rows.
// Ragged input yields ErrShapeMismatch.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 {
		return wrap([]int{0, 0}, []float64{}), nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, arrayErrorf(ctxFrom, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), cols))
		}
		data = append(data, row...)
	}

	return wrap([]int{len(rows), cols}, data), nil
}

// Zeros returns a zero-filled array of the given shape.
func Zeros(shape ...int) (*Array, error) {
	return Full(0, shape...)
}

// Full returns an array of the given shape filled with v.
func Full(v float64, shape ...int) (*Array, error) {
	n, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	return wrap(cloneInts(shape), fill(n, v)), nil
}

// Arange returns the 1-d array [0, 1, ..., n-1]. n<=0 yields an empty array.
func Arange(n int) *Array {
	if n < 0 {
		n = 0
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}

	return wrap([]int{n}, data)
}

// From converts a Go number, slice or array into an Array.
//
// Supported inputs: float64, float32, int, int64, []float64, []int,
// [][]float64, [][][]float64 and *Array (returned as is; arrays are immutable).
// Anything else yields ErrUnsupportedType.
func From(v any) (*Array, error) {
	switch x := v.(type) {
	case *Array:
		if x == nil {
			return nil, arrayErrorf(ctxFrom, ErrUnsupportedType)
		}
		return x, nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(float64(x)), nil
	case int:
		return Scalar(float64(x)), nil
	case int64:
		return Scalar(float64(x)), nil
	case []float64:
		return FromSlice(x), nil
	case []int:
		data := make([]float64, len(x))
		for i, e := range x {
			data[i] = float64(e)
		}
		return wrap([]int{len(x)}, data), nil
	case [][]float64:
		return FromRows(x)
	case [][][]float64:
		return fromCube(x)
	default:
		return nil, arrayErrorf(ctxFrom, fmt.Errorf("%w: %T", ErrUnsupportedType, v))
	}
}

// fromCube flattens a regular 3-d slice.
func fromCube(cube [][][]float64) (*Array, error) {
	if len(cube) == 0 {
		return wrap([]int{0, 0, 0}, []float64{}), nil
	}
	first, err := FromRows(cube[0])
	if err != nil {
		return nil, err
	}
	inner := first.shape
	data := make([]float64, 0, len(cube)*len(first.data))
	for i, plane := range cube {
		p, err := FromRows(plane)
		if err != nil {
			return nil, err
		}
		if !equalInts(p.shape, inner) {
			return nil, arrayErrorf(ctxFrom, fmt.Errorf("%w: plane %d has shape %v, want %v", ErrShapeMismatch, i, p.shape, inner))
		}
		data = append(data, p.data...)
	}

	return wrap([]int{len(cube), inner[0], inner[1]}, data), nil
}

// Shape returns a copy of the array extents.
func (a *Array) Shape() []int { return cloneInts(a.shape) }

// Ndim returns the number of axes (0 for scalars).
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data returns a copy of the flat row-major buffer.
func (a *Array) Data() []float64 { return cloneFloats(a.data) }

// At returns the element at the given multi-index.
// The index must name every axis; negative positions are not accepted.
//
// Errors: ErrOutOfRange (wrong arity or any position outside its extent).
//
// Complexity: Time O(ndim), Space O(1).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(ctxAt, fmt.Errorf("%w: %d indices for %d axes", ErrOutOfRange, len(idx), len(a.shape)))
	}
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape[ax] {
			return 0, arrayErrorf(ctxAt, fmt.Errorf("%w: index %d on axis %d of extent %d", ErrOutOfRange, i, ax, a.shape[ax]))
		}
		off = off*a.shape[ax] + i
	}

	return a.data[off], nil
}

// Item returns the single element of a one-element array.
func (a *Array) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, arrayErrorf(ctxItem, fmt.Errorf("%w: item of array with %d elements", ErrShapeMismatch, len(a.data)))
	}

	return a.data[0], nil
}

// Equal reports whether a and b have the same shape and bit-identical values
// (NaN never compares equal).
func (a *Array) Equal(b *Array) bool {
	if !equalInts(a.shape, b.shape) {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}

// String renders nested brackets in row-major order, e.g. "[[1 2] [3 4]]".
// A 0-d array renders as its bare value.
func (a *Array) String() string {
	if len(a.shape) == 0 {
		return formatFloat(a.data[0])
	}
	var sb strings.Builder
	a.format(&sb, 0, 0)

	return sb.String()
}

// format writes the sub-array rooted at axis ax starting at flat offset off.
func (a *Array) format(sb *strings.Builder, ax, off int) {
	sb.WriteString(_fmtOpen)
	block := 1
	for _, d := range a.shape[ax+1:] {
		block *= d
	}
	for i := 0; i < a.shape[ax]; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		if ax == len(a.shape)-1 {
			sb.WriteString(formatFloat(a.data[off+i]))
			continue
		}
		a.format(sb, ax+1, off+i*block)
	}
	sb.WriteString(_fmtClose)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SPDX-License-Identifier: MIT

// Package qfloat - numeric-library interop.
//
// QFloat implements ndarray.Operand[*QFloat], so ndarray's package-level
// functions (Reshape, Flip, Append, Sin, ...) accept quantities directly:
//   - shape/selection functions run on the nominal and uncertainty arrays
//     with identical arguments and keep the unit (Apply);
//   - combining functions first convert the other operand into the
//     receiver's unit (Join);
//   - element-wise functions go through the ufunc registry (UFunc).
//
// The methods below are thin conveniences over those generics.

package qfloat

import (
	"fmt"

	"github.com/katalvlaran/astrokit/ndarray"
)

var _ ndarray.Operand[*QFloat] = (*QFloat)(nil)

// Apply runs fn on the nominal and uncertainty arrays and keeps the unit.
func (q *QFloat) Apply(fn func(*ndarray.Array) (*ndarray.Array, error)) (*QFloat, error) {
	nom, err := fn(q.nominal)
	if err != nil {
		return nil, err
	}
	if q.std == nil {
		return q.derive(nom, nil, q.unit), nil
	}
	std, err := fn(q.std)
	if err != nil {
		return nil, err
	}

	return q.derive(nom, std, q.unit), nil
}

// Join converts other into q's unit and runs fn pairwise on nominal and
// uncertainty arrays.
//
// Errors: ErrUnsupportedOperand (nil other), ErrUnitIncompatible.
func (q *QFloat) Join(other *QFloat, fn func(a, b *ndarray.Array) (*ndarray.Array, error)) (*QFloat, error) {
	if other == nil {
		return nil, qfloatErrorf(ctxJoin, fmt.Errorf("%w: nil *QFloat", ErrUnsupportedOperand))
	}
	o, err := other.ToUnit(q.unit)
	if err != nil {
		return nil, qfloatErrorf(ctxJoin, err)
	}
	nom, err := fn(q.nominal, o.nominal)
	if err != nil {
		return nil, qfloatErrorf(ctxJoin, err)
	}
	if !q.tracks() {
		return q.derive(nom, nil, q.unit), nil
	}
	std, err := fn(q.stdOrZeros(), o.stdOrZeros())
	if err != nil {
		return nil, qfloatErrorf(ctxJoin, err)
	}

	return q.derive(nom, std, q.unit), nil
}

// ---------- shape and selection ----------

func (q *QFloat) Reshape(shape ...int) (*QFloat, error)  { return ndarray.Reshape(q, shape...) }
func (q *QFloat) Ravel() (*QFloat, error)                { return ndarray.Ravel(q) }
func (q *QFloat) Transpose(axes ...int) (*QFloat, error) { return ndarray.Transpose(q, axes...) }
func (q *QFloat) SwapAxes(a1, a2 int) (*QFloat, error)   { return ndarray.SwapAxes(q, a1, a2) }
func (q *QFloat) Flip(axes ...int) (*QFloat, error)      { return ndarray.Flip(q, axes...) }
func (q *QFloat) FlipLR() (*QFloat, error)               { return ndarray.FlipLR(q) }
func (q *QFloat) FlipUD() (*QFloat, error)               { return ndarray.FlipUD(q) }
func (q *QFloat) Tile(reps ...int) (*QFloat, error)      { return ndarray.Tile(q, reps...) }
func (q *QFloat) Squeeze(axes ...int) (*QFloat, error)   { return ndarray.Squeeze(q, axes...) }
func (q *QFloat) Resize(shape ...int) (*QFloat, error)   { return ndarray.Resize(q, shape...) }

func (q *QFloat) MoveAxis(source, destination []int) (*QFloat, error) {
	return ndarray.MoveAxis(q, source, destination)
}

func (q *QFloat) RollAxis(axis, start int) (*QFloat, error) { return ndarray.RollAxis(q, axis, start) }

func (q *QFloat) Roll(shift int, axes ...int) (*QFloat, error) {
	return ndarray.Roll(q, shift, axes...)
}

func (q *QFloat) Rot90(k, a0, a1 int) (*QFloat, error) { return ndarray.Rot90(q, k, a0, a1) }

func (q *QFloat) Repeat(n int, axes ...int) (*QFloat, error) {
	return ndarray.Repeat(q, n, axes...)
}

func (q *QFloat) Take(indices []int, axes ...int) (*QFloat, error) {
	return ndarray.Take(q, indices, axes...)
}

func (q *QFloat) Delete(indices []int, axes ...int) (*QFloat, error) {
	return ndarray.Delete(q, indices, axes...)
}

func (q *QFloat) ExpandDims(axes ...int) (*QFloat, error) { return ndarray.ExpandDims(q, axes...) }

// Round rounds nominal and uncertainty half-to-even to decimals.
func (q *QFloat) Round(decimals int) (*QFloat, error) { return ndarray.Round(q, decimals) }

// Around is an alias of Round.
func (q *QFloat) Around(decimals int) (*QFloat, error) { return ndarray.Around(q, decimals) }

// Index selects idx[0] along the first axis, then idx[1] along the first
// remaining axis, and so on. Negative indices count from the end.
func (q *QFloat) Index(idx ...int) (*QFloat, error) {
	return q.Apply(func(a *ndarray.Array) (*ndarray.Array, error) {
		var err error
		for _, i := range idx {
			if a, err = a.Index(i); err != nil {
				return nil, err
			}
		}
		return a, nil
	})
}

// Slice selects start:stop:step along axis with Python slice semantics.
func (q *QFloat) Slice(axis, start, stop, step int) (*QFloat, error) {
	return q.Apply(func(a *ndarray.Array) (*ndarray.Array, error) {
		return a.SliceAxis(axis, start, stop, step)
	})
}

// ---------- combining ----------

// Append appends values (any operand coerce accepts) after converting them
// into q's unit; without an axis both sides are flattened.
func (q *QFloat) Append(values any, axes ...int) (*QFloat, error) {
	o, err := q.coerce(values)
	if err != nil {
		return nil, qfloatErrorf(ctxJoin, err)
	}

	return ndarray.Append(q, o, axes...)
}

// Insert inserts values before index; see ndarray.Array.Insert for the
// placement rules.
func (q *QFloat) Insert(index int, values any, axes ...int) (*QFloat, error) {
	o, err := q.coerce(values)
	if err != nil {
		return nil, qfloatErrorf(ctxJoin, err)
	}

	return ndarray.Insert(q, index, o, axes...)
}

// Concatenate joins values along axis in the unit of the first one.
func Concatenate(qs []*QFloat, axis int) (*QFloat, error) {
	return ndarray.Concat(qs, axis)
}

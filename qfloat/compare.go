// SPDX-License-Identifier: MIT

package qfloat

import (
	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/units"
)

// Equal reports whether every nominal value of q equals the matching value
// of other after converting other into q's unit and broadcasting.
// Uncertainties are ignored.
//
// Errors: ErrUnitIncompatible, ErrShapeMismatch, ErrUnsupportedOperand.
func (q *QFloat) Equal(other any) (bool, error) {
	eq, err := q.order(other, func(a, b float64) bool { return a == b })
	if err != nil {
		return false, err
	}
	for _, v := range eq {
		if !v {
			return false, nil
		}
	}

	return true, nil
}

// NotEqual is the negation of Equal.
func (q *QFloat) NotEqual(other any) (bool, error) {
	eq, err := q.Equal(other)
	if err != nil {
		return false, err
	}

	return !eq, nil
}

// Less compares nominal values element-wise after unit conversion.
func (q *QFloat) Less(other any) ([]bool, error) {
	return q.order(other, func(a, b float64) bool { return a < b })
}

// LessEqual compares nominal values element-wise after unit conversion.
func (q *QFloat) LessEqual(other any) ([]bool, error) {
	return q.order(other, func(a, b float64) bool { return a <= b })
}

// Greater compares nominal values element-wise after unit conversion.
func (q *QFloat) Greater(other any) ([]bool, error) {
	return q.order(other, func(a, b float64) bool { return a > b })
}

// GreaterEqual compares nominal values element-wise after unit conversion.
func (q *QFloat) GreaterEqual(other any) ([]bool, error) {
	return q.order(other, func(a, b float64) bool { return a >= b })
}

// order broadcasts both nominal arrays and applies cmp; the result is
// flattened in row-major order of the broadcast shape.
// Errors: ErrUnitIncompatible, ErrShapeMismatch, ErrUnsupportedOperand.
func (q *QFloat) order(other any, cmp func(a, b float64) bool) ([]bool, error) {
	o, err := q.coerce(other)
	if err != nil {
		return nil, qfloatErrorf(ctxCompare, err)
	}
	if o, err = o.ToUnit(q.unit); err != nil {
		return nil, qfloatErrorf(ctxCompare, err)
	}
	x, y, err := ndarray.Broadcast2(q.nominal, o.nominal)
	if err != nil {
		return nil, qfloatErrorf(ctxCompare, err)
	}
	xs, ys := x.Data(), y.Data()
	out := make([]bool, len(xs))
	for i := range xs {
		out[i] = cmp(xs[i], ys[i])
	}

	return out, nil
}

// Compatible reports whether q converts into u.
func (q *QFloat) Compatible(u units.Unit) bool { return q.unit.SameDimensions(u) }

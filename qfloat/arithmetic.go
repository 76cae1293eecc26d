// SPDX-License-Identifier: MIT

// Package qfloat - arithmetic with unit rules and uncertainty propagation.
//
// Unit rules:
//   - add, sub, mod: the right operand is converted into the left operand's unit.
//   - floordiv: same conversion, dimensionless result.
//   - mul, div: units compose.
//   - pow: the exponent must be dimensionless; a base with a unit needs a
//     single integral exponent.
//
// Uncertainties propagate through deriv (first order, uncorrelated inputs).

package qfloat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astrokit/deriv"
	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/units"
)

// Add returns q + other.
func (q *QFloat) Add(other any) (*QFloat, error) { return q.binary(deriv.OpAdd, other) }

// Sub returns q − other.
func (q *QFloat) Sub(other any) (*QFloat, error) { return q.binary(deriv.OpSub, other) }

// Mul returns q · other.
func (q *QFloat) Mul(other any) (*QFloat, error) { return q.binary(deriv.OpMul, other) }

// Div returns the true quotient q / other.
func (q *QFloat) Div(other any) (*QFloat, error) { return q.binary(deriv.OpTrueDiv, other) }

// FloorDiv returns floor(q / other) as a dimensionless value.
func (q *QFloat) FloorDiv(other any) (*QFloat, error) { return q.binary(deriv.OpFloorDiv, other) }

// Mod returns q mod other with the sign of other.
func (q *QFloat) Mod(other any) (*QFloat, error) { return q.binary(deriv.OpMod, other) }

// Pow returns q raised to other.
func (q *QFloat) Pow(other any) (*QFloat, error) { return q.binary(deriv.OpPow, other) }

// Neg returns −q; the uncertainty is unchanged.
func (q *QFloat) Neg() *QFloat {
	return q.derive(q.nominal.Scale(-1), q.std, q.unit)
}

// Pos returns +q.
func (q *QFloat) Pos() *QFloat {
	return q.derive(q.nominal, q.std, q.unit)
}

// Abs returns |q|; the uncertainty is unchanged.
func (q *QFloat) Abs() *QFloat {
	return q.derive(q.nominal.Map(math.Abs), q.std, q.unit)
}

// binary runs one arithmetic operation.
//
// Implementation:
//   - Stage 1: coerce the operand and reconcile units for op.
//   - Stage 2: broadcast nominal and uncertainty arrays to a common shape.
//   - Stage 3: evaluate f element-wise and propagate σ through deriv.
func (q *QFloat) binary(op deriv.Op, other any) (*QFloat, error) {
	tag := ctxBinary + "." + string(op)
	o, err := q.coerce(other)
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}

	left := q
	var out units.Unit
	switch op {
	case deriv.OpAdd, deriv.OpSub, deriv.OpMod, deriv.OpFloorDiv:
		if o, err = o.ToUnit(q.unit); err != nil {
			return nil, qfloatErrorf(tag, err)
		}
		out = q.unit
		if op == deriv.OpFloorDiv {
			out = units.Dimensionless
		}
	case deriv.OpMul:
		out = q.unit.Mul(o.unit)
	case deriv.OpDiv, deriv.OpTrueDiv:
		out = q.unit.Div(o.unit)
	case deriv.OpPow:
		if left, o, out, err = q.powUnits(o); err != nil {
			return nil, qfloatErrorf(tag, err)
		}
	}

	x, y, err := ndarray.Broadcast2(left.nominal, o.nominal)
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}
	f, err := x.Zip(y, func(a, b float64) float64 {
		v, _ := deriv.Eval(op, a, b)
		return v
	})
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}
	if !q.tracks() {
		return q.derive(f, nil, out), nil
	}

	shape := f.Shape()
	sx, err := left.stdOrZeros().BroadcastTo(shape...)
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}
	sy, err := o.stdOrZeros().BroadcastTo(shape...)
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}
	sigma, err := q.config().prop.Propagate2(op, f.Data(), x.Data(), y.Data(), sx.Data(), sy.Data())
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}
	std, err := ndarray.New(shape, sigma)
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}

	return q.derive(f, std, out), nil
}

// powUnits applies the unit rules of pow and returns the (possibly
// converted) base, exponent and result unit.
func (q *QFloat) powUnits(exp *QFloat) (*QFloat, *QFloat, units.Unit, error) {
	if !exp.unit.IsDimensionless() {
		return nil, nil, units.Unit{}, fmt.Errorf("%w: exponent must be dimensionless, got %q", ErrUnitIncompatible, exp.unit)
	}
	e, err := exp.ToUnit(units.Dimensionless)
	if err != nil {
		return nil, nil, units.Unit{}, err
	}
	if q.unit.IsDimensionless() {
		base, err := q.ToUnit(units.Dimensionless)
		if err != nil {
			return nil, nil, units.Unit{}, err
		}
		return base, e, units.Dimensionless, nil
	}
	n, err := e.nominal.Item()
	if err != nil || math.Mod(n, 1) != 0 {
		return nil, nil, units.Unit{}, fmt.Errorf("%w: base in %q needs a single integral exponent", ErrUnitIncompatible, q.unit)
	}

	return q, e, q.unit.Pow(int(n)), nil
}

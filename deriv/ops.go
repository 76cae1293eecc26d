// SPDX-License-Identifier: MIT

// Package deriv - operation catalog and analytic partials.
//
// AI-Hints:
//   - The catalog maps an Op to a constructor taking the finite-difference
//     step, so numerical fallbacks honour WithStep.
//   - "div" and "truediv" are the same operation under two names.

package deriv

import (
	"fmt"
	"math"
)

// Op names a binary arithmetic operation.
type Op string

// Supported operations.
const (
	OpAdd      Op = "add"
	OpSub      Op = "sub"
	OpMul      Op = "mul"
	OpDiv      Op = "div"
	OpTrueDiv  Op = "truediv"
	OpFloorDiv Op = "floordiv"
	OpMod      Op = "mod"
	OpPow      Op = "pow"
)

// Partials is the derivative descriptor of f(x, y).
type Partials struct {
	DX func(x, y float64) float64
	DY func(x, y float64) float64
}

// catalog is read-only after package init.
var catalog = map[Op]func(step float64) Partials{
	OpAdd:      constant(1, 1),
	OpSub:      constant(1, -1),
	OpMul:      func(float64) Partials { return Partials{DX: second, DY: first} },
	OpDiv:      divPartials,
	OpTrueDiv:  divPartials,
	OpFloorDiv: constant(0, 0),
	OpMod:      modPartials,
	OpPow:      powPartials,
}

func first(x, _ float64) float64  { return x }
func second(_, y float64) float64 { return y }

func constant(dx, dy float64) func(float64) Partials {
	p := Partials{
		DX: func(_, _ float64) float64 { return dx },
		DY: func(_, _ float64) float64 { return dy },
	}

	return func(float64) Partials { return p }
}

func divPartials(float64) Partials {
	return Partials{
		DX: func(_, y float64) float64 { return 1 / y },
		DY: func(x, y float64) float64 { return -x / (y * y) },
	}
}

func modPartials(step float64) Partials {
	return Partials{
		DX: func(_, _ float64) float64 { return 1 },
		DY: partial2(FloorMod, 1, step),
	}
}

// powPartials: ∂/∂x is 0 for y==0 and y·x^(y−1) when x≠0 or y is integral,
// numerical otherwise; ∂/∂y is 0 for x==0 with y>0, else ln(x)·x^y.
func powPartials(step float64) Partials {
	numDX := partial2(math.Pow, 0, step)

	return Partials{
		DX: func(x, y float64) float64 {
			switch {
			case y == 0:
				return 0
			case x != 0 || math.Mod(y, 1) == 0:
				return y * math.Pow(x, y-1)
			default:
				return numDX(x, y)
			}
		},
		DY: func(x, y float64) float64 {
			if x == 0 && y > 0 {
				return 0
			}
			return math.Log(x) * math.Pow(x, y)
		},
	}
}

// ParseOp validates an operation name.
func ParseOp(name string) (Op, error) {
	op := Op(name)
	if _, ok := catalog[op]; !ok {
		return "", derivErrorf(ctxLookup, fmt.Errorf("%w: %q", ErrUnknownOperation, name))
	}

	return op, nil
}

// Lookup returns the partials of op with the default step.
func Lookup(op Op) (Partials, error) {
	return lookup(op, DefaultStep)
}

func lookup(op Op, step float64) (Partials, error) {
	mk, ok := catalog[op]
	if !ok {
		return Partials{}, derivErrorf(ctxLookup, fmt.Errorf("%w: %q", ErrUnknownOperation, op))
	}

	return mk(step), nil
}

// Derivative returns (∂f/∂x, ∂f/∂y) of op at (x, y).
func Derivative(op Op, x, y float64) (float64, float64, error) {
	p, err := Lookup(op)
	if err != nil {
		return 0, 0, err
	}

	return p.DX(x, y), p.DY(x, y), nil
}

// Derivatives evaluates both partials over equal-length slices.
func Derivatives(op Op, xs, ys []float64) ([]float64, []float64, error) {
	p, err := Lookup(op)
	if err != nil {
		return nil, nil, err
	}
	dx, err := Vectorize(p.DX, xs, ys)
	if err != nil {
		return nil, nil, err
	}
	dy, err := Vectorize(p.DY, xs, ys)
	if err != nil {
		return nil, nil, err
	}

	return dx, dy, nil
}

// Eval returns the value of op at (x, y). Division by zero follows IEEE 754;
// floordiv and mod take the sign of the divisor.
func Eval(op Op, x, y float64) (float64, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSub:
		return x - y, nil
	case OpMul:
		return x * y, nil
	case OpDiv, OpTrueDiv:
		return x / y, nil
	case OpFloorDiv:
		return FloorDiv(x, y), nil
	case OpMod:
		return FloorMod(x, y), nil
	case OpPow:
		return math.Pow(x, y), nil
	default:
		return 0, derivErrorf(ctxLookup, fmt.Errorf("%w: %q", ErrUnknownOperation, op))
	}
}

// FloorMod returns x mod y with the sign of y (NaN for y==0).
func FloorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r
}

// FloorDiv returns floor(x / y), consistent with FloorMod.
func FloorDiv(x, y float64) float64 {
	if y == 0 {
		return x / y
	}

	div := (x - FloorMod(x, y)) / y
	q := math.Floor(div)
	if div-q > 0.5 {
		q++
	}

	return q
}

// SPDX-License-Identifier: MIT

// Package ndarray - named element-wise functions (ufuncs) for plain arrays.
//
// The UFunc names are shared with every Operand implementation: a quantity
// type keeps its own registry keyed by the same names, so ndarray.Sin(v)
// dispatches to whichever implementation v provides.

package ndarray

import (
	"fmt"
	"math"
)

// UFunc names an element-wise function.
type UFunc string

// Registered ufunc names.
const (
	UFuncSin      UFunc = "sin"
	UFuncCos      UFunc = "cos"
	UFuncTan      UFunc = "tan"
	UFuncArcSin   UFunc = "arcsin"
	UFuncArcCos   UFunc = "arccos"
	UFuncArcTan   UFunc = "arctan"
	UFuncSinh     UFunc = "sinh"
	UFuncCosh     UFunc = "cosh"
	UFuncTanh     UFunc = "tanh"
	UFuncArcSinh  UFunc = "arcsinh"
	UFuncArcCosh  UFunc = "arccosh"
	UFuncArcTanh  UFunc = "arctanh"
	UFuncRadians  UFunc = "radians"
	UFuncDeg2Rad  UFunc = "deg2rad"
	UFuncDegrees  UFunc = "degrees"
	UFuncRad2Deg  UFunc = "rad2deg"
	UFuncNegative UFunc = "negative"
	UFuncPositive UFunc = "positive"
	UFuncAbsolute UFunc = "absolute"
	UFuncSquare   UFunc = "square"
	UFuncSqrt     UFunc = "sqrt"
	UFuncExp      UFunc = "exp"
	UFuncLog      UFunc = "log"
	UFuncLog10    UFunc = "log10"
	UFuncLog2     UFunc = "log2"
	UFuncClip     UFunc = "clip"
)

// plainUFunc is a float kernel with a fixed number of scalar parameters.
type plainUFunc struct {
	arity int
	fn    func(x float64, p []float64) float64
}

func unary(f func(float64) float64) plainUFunc {
	return plainUFunc{fn: func(x float64, _ []float64) float64 { return f(x) }}
}

// plainUFuncs is read-only after package init.
var plainUFuncs = map[UFunc]plainUFunc{
	UFuncSin:      unary(math.Sin),
	UFuncCos:      unary(math.Cos),
	UFuncTan:      unary(math.Tan),
	UFuncArcSin:   unary(math.Asin),
	UFuncArcCos:   unary(math.Acos),
	UFuncArcTan:   unary(math.Atan),
	UFuncSinh:     unary(math.Sinh),
	UFuncCosh:     unary(math.Cosh),
	UFuncTanh:     unary(math.Tanh),
	UFuncArcSinh:  unary(math.Asinh),
	UFuncArcCosh:  unary(math.Acosh),
	UFuncArcTanh:  unary(math.Atanh),
	UFuncRadians:  unary(func(x float64) float64 { return x * math.Pi / 180 }),
	UFuncDeg2Rad:  unary(func(x float64) float64 { return x * math.Pi / 180 }),
	UFuncDegrees:  unary(func(x float64) float64 { return x * 180 / math.Pi }),
	UFuncRad2Deg:  unary(func(x float64) float64 { return x * 180 / math.Pi }),
	UFuncNegative: unary(func(x float64) float64 { return -x }),
	UFuncPositive: unary(func(x float64) float64 { return x }),
	UFuncAbsolute: unary(math.Abs),
	UFuncSquare:   unary(func(x float64) float64 { return x * x }),
	UFuncSqrt:     unary(math.Sqrt),
	UFuncExp:      unary(math.Exp),
	UFuncLog:      unary(math.Log),
	UFuncLog10:    unary(math.Log10),
	UFuncLog2:     unary(math.Log2),
	UFuncClip: {arity: 2, fn: func(x float64, p []float64) float64 {
		return math.Max(p[0], math.Min(p[1], x))
	}},
}

// UFunc applies the named function element-wise.
//
// Errors: ErrNotImplemented (unknown name), ErrBadParam (wrong parameter count).
func (a *Array) UFunc(name UFunc, params ...float64) (*Array, error) {
	uf, ok := plainUFuncs[name]
	if !ok {
		return nil, arrayErrorf(ctxUFunc, fmt.Errorf("%w: %q", ErrNotImplemented, name))
	}
	if len(params) != uf.arity {
		return nil, arrayErrorf(ctxUFunc, fmt.Errorf("%w: %q takes %d parameters, got %d", ErrBadParam, name, uf.arity, len(params)))
	}
	if name == UFuncClip {
		return a.Clip(params[0], params[1])
	}

	return a.Map(func(x float64) float64 { return uf.fn(x, params) }), nil
}

// SPDX-License-Identifier: MIT

// Package qfloat - element-wise functions with unit rules.
//
// Every registered ufunc declares:
//   - which input units it accepts (any, angle, dimensionless);
//   - the unit the input is converted to before evaluation;
//   - the output unit;
//   - f and its derivative df, used for first-order σ propagation.
//
// Names without an entry return ErrNotImplemented. A silently degraded
// result (dropping the unit or the uncertainty) is never produced.

package qfloat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/units"
)

// inputRule restricts the unit a ufunc accepts.
type inputRule int

const (
	anyUnit inputRule = iota
	angleUnit
	dimensionlessUnit
)

func (r inputRule) String() string {
	switch r {
	case angleUnit:
		return "an angle"
	case dimensionlessUnit:
		return "dimensionless"
	default:
		return "any unit"
	}
}

// ufuncSpec describes one element-wise function on quantities.
type ufuncSpec struct {
	in inputRule
	// convert is the unit the input is brought to before f; nil keeps it.
	convert *units.Unit
	// out derives the output unit from the converted input unit.
	out func(units.Unit) (units.Unit, error)
	f   func(float64) float64
	df  func(float64) float64
}

var (
	radian        = units.Radian
	degree        = units.Degree
	dimensionless = units.Dimensionless
)

func fixed(u units.Unit) func(units.Unit) (units.Unit, error) {
	return func(units.Unit) (units.Unit, error) { return u, nil }
}

func same(u units.Unit) (units.Unit, error) { return u, nil }

func identity(x float64) float64 { return x }
func one(float64) float64        { return 1 }

// trig builds a function of an angle with a dimensionless result.
func trig(f, df func(float64) float64) ufuncSpec {
	return ufuncSpec{in: angleUnit, convert: &radian, out: fixed(dimensionless), f: f, df: df}
}

// inverse builds a function of a dimensionless value returning radians.
func inverse(f, df func(float64) float64) ufuncSpec {
	return ufuncSpec{in: dimensionlessUnit, convert: &dimensionless, out: fixed(radian), f: f, df: df}
}

// plain builds a function of a dimensionless value with a dimensionless result.
func plain(f, df func(float64) float64) ufuncSpec {
	return ufuncSpec{in: dimensionlessUnit, convert: &dimensionless, out: fixed(dimensionless), f: f, df: df}
}

// ufuncs is read-only after package init.
var ufuncs = map[ndarray.UFunc]ufuncSpec{
	ndarray.UFuncSin: trig(math.Sin, math.Cos),
	ndarray.UFuncCos: trig(math.Cos, func(x float64) float64 { return -math.Sin(x) }),
	ndarray.UFuncTan: trig(math.Tan, func(x float64) float64 {
		c := math.Cos(x)
		return 1 / (c * c)
	}),
	ndarray.UFuncSinh: trig(math.Sinh, math.Cosh),
	ndarray.UFuncCosh: trig(math.Cosh, math.Sinh),
	ndarray.UFuncTanh: trig(math.Tanh, func(x float64) float64 {
		c := math.Cosh(x)
		return 1 / (c * c)
	}),

	ndarray.UFuncArcSin: inverse(math.Asin, func(x float64) float64 { return 1 / math.Sqrt(1-x*x) }),
	ndarray.UFuncArcCos: inverse(math.Acos, func(x float64) float64 { return -1 / math.Sqrt(1-x*x) }),
	ndarray.UFuncArcTan: inverse(math.Atan, func(x float64) float64 { return 1 / (1 + x*x) }),
	ndarray.UFuncArcSinh: inverse(math.Asinh, func(x float64) float64 {
		return 1 / math.Sqrt(x*x+1)
	}),
	ndarray.UFuncArcCosh: inverse(math.Acosh, func(x float64) float64 {
		return 1 / math.Sqrt(x*x-1)
	}),
	ndarray.UFuncArcTanh: inverse(math.Atanh, func(x float64) float64 { return 1 / (1 - x*x) }),

	// Angle conversions are unit conversions: the value is rescaled by ToUnit.
	ndarray.UFuncRadians: {in: angleUnit, convert: &radian, out: fixed(radian), f: identity, df: one},
	ndarray.UFuncDeg2Rad: {in: angleUnit, convert: &radian, out: fixed(radian), f: identity, df: one},
	ndarray.UFuncDegrees: {in: angleUnit, convert: &degree, out: fixed(degree), f: identity, df: one},
	ndarray.UFuncRad2Deg: {in: angleUnit, convert: &degree, out: fixed(degree), f: identity, df: one},

	ndarray.UFuncNegative: {out: same, f: func(x float64) float64 { return -x }, df: one},
	ndarray.UFuncPositive: {out: same, f: identity, df: one},
	ndarray.UFuncAbsolute: {out: same, f: math.Abs, df: one},
	ndarray.UFuncSquare: {
		out: func(u units.Unit) (units.Unit, error) { return u.Pow(2), nil },
		f:   func(x float64) float64 { return x * x },
		df:  func(x float64) float64 { return 2 * x },
	},
	ndarray.UFuncSqrt: {
		out: func(u units.Unit) (units.Unit, error) { return u.Root(2) },
		f:   math.Sqrt,
		df:  func(x float64) float64 { return 0.5 / math.Sqrt(x) },
	},

	ndarray.UFuncExp:   plain(math.Exp, math.Exp),
	ndarray.UFuncLog:   plain(math.Log, func(x float64) float64 { return 1 / x }),
	ndarray.UFuncLog10: plain(math.Log10, func(x float64) float64 { return 1 / (x * math.Ln10) }),
	ndarray.UFuncLog2:  plain(math.Log2, func(x float64) float64 { return 1 / (x * math.Ln2) }),
}

// UFunc applies the named element-wise function.
//
// Implementation:
//   - Stage 1: check the input unit against the function's rule and convert.
//   - Stage 2: evaluate f on the nominal values.
//   - Stage 3: σ_out = |f'(x)|·σ through the configured propagator.
//
// Clip is handled apart: bounds are in q's unit, σ is kept unchanged.
//
// Errors: ErrNotImplemented (no registry entry), ndarray.ErrBadParam (wrong
// parameter count), ErrUnitIncompatible (unit outside the function's domain).
func (q *QFloat) UFunc(name ndarray.UFunc, params ...float64) (*QFloat, error) {
	tag := ctxUFunc + "." + string(name)
	if name == ndarray.UFuncClip {
		return q.clip(tag, params)
	}
	spec, ok := ufuncs[name]
	if !ok {
		return nil, qfloatErrorf(tag, fmt.Errorf("%w: %q", ErrNotImplemented, name))
	}
	if len(params) != 0 {
		return nil, qfloatErrorf(tag, fmt.Errorf("%w: %q takes no parameters", ndarray.ErrBadParam, name))
	}

	in := q
	switch spec.in {
	case angleUnit:
		if !q.unit.IsAngle() {
			return nil, qfloatErrorf(tag, fmt.Errorf("%w: %q needs %s, got %q", ErrUnitIncompatible, name, spec.in, q.unit))
		}
	case dimensionlessUnit:
		if !q.unit.IsDimensionless() {
			return nil, qfloatErrorf(tag, fmt.Errorf("%w: %q needs %s input, got %q", ErrUnitIncompatible, name, spec.in, q.unit))
		}
	}
	if spec.convert != nil {
		var err error
		if in, err = q.ToUnit(*spec.convert); err != nil {
			return nil, qfloatErrorf(tag, err)
		}
	}
	out, err := spec.out(in.unit)
	if err != nil {
		return nil, unitError(tag, err)
	}

	nom := in.nominal.Map(spec.f)
	if !q.tracks() {
		return q.derive(nom, nil, out), nil
	}
	sigma, err := q.config().prop.Unary(spec.df, in.nominal.Data(), in.stdOrZeros().Data())
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}
	std, err := ndarray.New(nom.Shape(), sigma)
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}

	return q.derive(nom, std, out), nil
}

func (q *QFloat) clip(tag string, params []float64) (*QFloat, error) {
	if len(params) != 2 {
		return nil, qfloatErrorf(tag, fmt.Errorf("%w: clip takes 2 parameters, got %d", ndarray.ErrBadParam, len(params)))
	}
	nom, err := q.nominal.Clip(params[0], params[1])
	if err != nil {
		return nil, qfloatErrorf(tag, err)
	}

	return q.derive(nom, q.std, q.unit), nil
}

// Convenience wrappers for the most used functions.

func (q *QFloat) Sin() (*QFloat, error)    { return q.UFunc(ndarray.UFuncSin) }
func (q *QFloat) Cos() (*QFloat, error)    { return q.UFunc(ndarray.UFuncCos) }
func (q *QFloat) Tan() (*QFloat, error)    { return q.UFunc(ndarray.UFuncTan) }
func (q *QFloat) ArcSin() (*QFloat, error) { return q.UFunc(ndarray.UFuncArcSin) }
func (q *QFloat) ArcCos() (*QFloat, error) { return q.UFunc(ndarray.UFuncArcCos) }
func (q *QFloat) ArcTan() (*QFloat, error) { return q.UFunc(ndarray.UFuncArcTan) }
func (q *QFloat) Sqrt() (*QFloat, error)   { return q.UFunc(ndarray.UFuncSqrt) }
func (q *QFloat) Square() (*QFloat, error) { return q.UFunc(ndarray.UFuncSquare) }
func (q *QFloat) Exp() (*QFloat, error)    { return q.UFunc(ndarray.UFuncExp) }
func (q *QFloat) Log10() (*QFloat, error)  { return q.UFunc(ndarray.UFuncLog10) }

// Clip limits nominal values to [lo, hi], given in q's unit.
func (q *QFloat) Clip(lo, hi float64) (*QFloat, error) { return q.UFunc(ndarray.UFuncClip, lo, hi) }

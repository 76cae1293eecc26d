// SPDX-License-Identifier: MIT

// Package deriv - numerical partial derivatives.
//
// Purpose:
//   - Differentiate any scalar function of positional and named arguments
//     with respect to one explicitly referenced argument.
//   - Delegate the finite-difference stencil to gonum diff/fd (fd.Central).
//
// The step is relative: h = step·|v|, or step when v is zero, so the
// derivative keeps its precision across magnitudes.

package deriv

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Args holds the arguments of a differentiable function.
type Args struct {
	Positional []float64
	Named      map[string]float64
}

// ArgRef references the differentiation variable inside Args.
type ArgRef struct {
	pos    int
	name   string
	byName bool
}

// ByPosition references Args.Positional[i].
func ByPosition(i int) ArgRef { return ArgRef{pos: i} }

// ByName references Args.Named[name].
func ByName(name string) ArgRef { return ArgRef{name: name, byName: true} }

// String renders the reference for error messages.
func (r ArgRef) String() string {
	if r.byName {
		return fmt.Sprintf("%q", r.name)
	}

	return fmt.Sprintf("#%d", r.pos)
}

// Func is a scalar function of Args.
type Func func(Args) float64

// get returns the referenced value.
func (r ArgRef) get(a Args) (float64, bool) {
	if r.byName {
		v, ok := a.Named[r.name]
		return v, ok
	}
	if r.pos < 0 || r.pos >= len(a.Positional) {
		return 0, false
	}

	return a.Positional[r.pos], true
}

// with returns a copy of a whose referenced value is v. The caller's
// slices and maps are never written.
func (r ArgRef) with(a Args, v float64) Args {
	out := Args{Positional: a.Positional, Named: a.Named}
	if r.byName {
		out.Named = make(map[string]float64, len(a.Named))
		for k, x := range a.Named {
			out.Named[k] = x
		}
		out.Named[r.name] = v
		return out
	}
	out.Positional = make([]float64, len(a.Positional))
	copy(out.Positional, a.Positional)
	out.Positional[r.pos] = v

	return out
}

// NumericalDerivative returns the partial derivative of f with respect to
// the referenced argument, estimated with the central difference
// (f(v+h) − f(v−h)) / 2h.
//
// Errors (from the returned function): ErrArgument when the reference is
// not present in the given Args.
func NumericalDerivative(f Func, ref ArgRef, opts ...Option) func(Args) (float64, error) {
	o := gatherOptions(opts...)

	return func(a Args) (float64, error) {
		v, ok := ref.get(a)
		if !ok {
			return 0, derivErrorf(ctxNumerical, fmt.Errorf("%w: %s", ErrArgument, ref))
		}
		g := func(x float64) float64 { return f(ref.with(a, x)) }

		return central(g, v, o.step), nil
	}
}

// central differentiates g at v with a step relative to |v|.
func central(g func(float64) float64, v, step float64) float64 {
	h := step * math.Abs(v)
	if h == 0 {
		h = step
	}

	return fd.Derivative(g, v, &fd.Settings{Formula: fd.Central, Step: h})
}

// partial2 is the numerical partial of a binary function with respect to
// position pos (0 for x, 1 for y).
func partial2(f func(x, y float64) float64, pos int, step float64) func(x, y float64) float64 {
	d := NumericalDerivative(func(a Args) float64 {
		return f(a.Positional[0], a.Positional[1])
	}, ByPosition(pos), WithStep(step))

	return func(x, y float64) float64 {
		v, err := d(Args{Positional: []float64{x, y}})
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// Vectorize applies a scalar binary partial element-wise.
func Vectorize(df func(x, y float64) float64, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, derivErrorf(ctxDerivatives, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys)))
	}
	out := make([]float64, len(xs))
	for i := range xs {
		out[i] = df(xs[i], ys[i])
	}

	return out, nil
}

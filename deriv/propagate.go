// SPDX-License-Identifier: MIT

// Package deriv - first-order uncertainty propagation.
//
// Purpose:
//   - Combine the partials of a binary operation with the input
//     uncertainties under the uncorrelated-inputs assumption.
//   - Report degenerate elements (non-finite partial on a non-zero σ) as NaN
//     and log their count at debug level; never fail on numeric degeneracy.
//
// Complexity: Time O(n), Space O(n).

package deriv

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Propagator propagates uncertainties with a fixed configuration.
// It holds no mutable state and is safe for concurrent use.
type Propagator struct {
	opts Options
}

// NewPropagator returns a propagator configured by opts.
func NewPropagator(opts ...Option) *Propagator {
	return &Propagator{opts: gatherOptions(opts...)}
}

var defaultPropagator = NewPropagator()

// Propagate2 returns σf for every element of f = op(x, y).
//
// Implementation:
//   - Stage 1: reject unknown op and mismatched lengths before computing.
//   - Stage 2: per element, sqrt((∂f/∂x·σx)² + (∂f/∂y·σy)²) via math.Hypot,
//     skipping zero-σ terms; a non-finite partial on a non-zero σ gives NaN.
//
// Errors: ErrUnknownOperation, ErrLengthMismatch.
func (p *Propagator) Propagate2(op Op, fxy, x, y, sx, sy []float64) ([]float64, error) {
	pt, err := lookup(op, p.opts.step)
	if err != nil {
		return nil, derivErrorf(ctxPropagate, err)
	}
	n := len(fxy)
	if len(x) != n || len(y) != n || len(sx) != n || len(sy) != n {
		return nil, derivErrorf(ctxPropagate, fmt.Errorf("%w: f=%d x=%d y=%d sx=%d sy=%d",
			ErrLengthMismatch, n, len(x), len(y), len(sx), len(sy)))
	}

	out := make([]float64, n)
	degenerate := 0
	for i := range out {
		var ok bool
		if out[i], ok = propagateOne(pt, x[i], y[i], sx[i], sy[i]); !ok {
			degenerate++
		}
	}
	if degenerate > 0 {
		p.opts.logger.Debug("degenerate uncertainty propagation",
			zap.String("op", string(op)),
			zap.Int("elements", degenerate),
			zap.Int("total", n))
	}

	return out, nil
}

// Propagate2Scalar is Propagate2 for single values.
func (p *Propagator) Propagate2Scalar(op Op, fxy, x, y, sx, sy float64) (float64, error) {
	out, err := p.Propagate2(op, []float64{fxy}, []float64{x}, []float64{y}, []float64{sx}, []float64{sy})
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// propagateOne returns σf and false when the element is degenerate.
func propagateOne(pt Partials, x, y, sx, sy float64) (float64, bool) {
	var tx, ty float64
	if sx != 0 {
		d := pt.DX(x, y)
		if isNonFinite(d) {
			return math.NaN(), false
		}
		tx = d * sx
	}
	if sy != 0 {
		d := pt.DY(x, y)
		if isNonFinite(d) {
			return math.NaN(), false
		}
		ty = d * sy
	}

	return math.Hypot(tx, ty), true
}

// Unary returns |f'(x)|·σ per element. A zero σ yields 0; an infinite
// derivative with σ>0 yields +Inf, which marks an undefined uncertainty at
// a domain boundary (arcsin(1), arctanh(1)).
//
// Errors: ErrLengthMismatch.
func (p *Propagator) Unary(df func(float64) float64, xs, sxs []float64) ([]float64, error) {
	if len(xs) != len(sxs) {
		return nil, derivErrorf(ctxUnary, fmt.Errorf("%w: x=%d sx=%d", ErrLengthMismatch, len(xs), len(sxs)))
	}
	out := make([]float64, len(xs))
	inf := 0
	for i, x := range xs {
		if sxs[i] == 0 {
			continue
		}
		out[i] = math.Abs(df(x)) * sxs[i]
		if isNonFinite(out[i]) {
			inf++
		}
	}
	if inf > 0 {
		p.opts.logger.Debug("non-finite unary uncertainty", zap.Int("elements", inf), zap.Int("total", len(xs)))
	}

	return out, nil
}

// Propagate2 uses a default propagator with a no-op logger.
func Propagate2(op Op, fxy, x, y, sx, sy []float64) ([]float64, error) {
	return defaultPropagator.Propagate2(op, fxy, x, y, sx, sy)
}

// Propagate2Scalar uses a default propagator with a no-op logger.
func Propagate2Scalar(op Op, fxy, x, y, sx, sy float64) (float64, error) {
	return defaultPropagator.Propagate2Scalar(op, fxy, x, y, sx, sy)
}

// Unary uses a default propagator with a no-op logger.
func Unary(df func(float64) float64, xs, sxs []float64) ([]float64, error) {
	return defaultPropagator.Unary(df, xs, sxs)
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

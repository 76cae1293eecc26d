// SPDX-License-Identifier: MIT

// Package deriv: functional configuration for numerical derivatives and the
// error propagator. This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper.

package deriv

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

// DefaultStep is the relative central-difference step: the square root of
// the float64 machine epsilon. The absolute step is DefaultStep·|v|, or
// DefaultStep itself when v is zero.
const DefaultStep = 1.4901161193847656e-08

// ---------- Internal panic messages ----------

const (
	panicStepInvalid = "deriv: WithStep: step must be finite and positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	step   float64     // > 0; DefaultStep
	logger *zap.Logger // never nil after gatherOptions
}

// WithStep sets the relative finite-difference step.
// Panics when step is not finite or not positive.
func WithStep(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithLogger routes degeneracy reports to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{step: DefaultStep, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

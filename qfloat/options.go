// SPDX-License-Identifier: MIT

// Package qfloat: functional configuration replacing process-wide flags.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - Factory, which binds a configuration to every value it creates.
//
// Derived values inherit the settings of their receiver, so a configuration
// travels with the data instead of living in global state.

package qfloat

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/astrokit/deriv"
	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/units"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTrackUncertainty enables storage and propagation of uncertainties.
	DefaultTrackUncertainty = true

	// DefaultDerivativeStep is the relative finite-difference step used by
	// numerical partials.
	DefaultDerivativeStep = deriv.DefaultStep
)

const (
	panicStepInvalid = "qfloat: WithDerivativeStep: step must be finite and positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	track  bool
	step   float64
	logger *zap.Logger
}

// WithoutUncertainty disables uncertainty tracking: uncertainties are not
// stored nor propagated and read back as zeros.
func WithoutUncertainty() Option {
	return func(o *Options) { o.track = false }
}

// WithLogger routes debug-level degeneracy reports to l (nil disables).
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithDerivativeStep sets the relative finite-difference step.
// Panics when step is not finite or not positive.
func WithDerivativeStep(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// settings is the resolved, shared configuration of a family of values.
type settings struct {
	opts Options
	prop *deriv.Propagator
}

func newSettings(opts ...Option) *settings {
	o := Options{track: DefaultTrackUncertainty, step: DefaultDerivativeStep, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &settings{
		opts: o,
		prop: deriv.NewPropagator(deriv.WithLogger(o.logger), deriv.WithStep(o.step)),
	}
}

var defaultSettings = newSettings()

// settingsFor reuses the defaults when no option is given.
func settingsFor(opts []Option) *settings {
	if len(opts) == 0 {
		return defaultSettings
	}

	return newSettings(opts...)
}

// Factory creates values that share one configuration.
type Factory struct {
	cfg *settings
}

// NewFactory returns a factory configured by opts.
func NewFactory(opts ...Option) *Factory {
	return &Factory{cfg: newSettings(opts...)}
}

// TracksUncertainty reports whether values from f carry uncertainties.
func (f *Factory) TracksUncertainty() bool { return f.cfg.opts.track }

// New is the package-level New bound to the factory configuration.
func (f *Factory) New(nominal, uncertainty any, unit string) (*QFloat, error) {
	return newQFloat(f.cfg, nominal, uncertainty, unit)
}

// FromArrays is the package-level FromArrays bound to the factory configuration.
func (f *Factory) FromArrays(nominal, uncertainty *ndarray.Array, u units.Unit) (*QFloat, error) {
	return fromArrays(f.cfg, nominal, uncertainty, u)
}

// Scalar is the package-level Scalar bound to the factory configuration.
func (f *Factory) Scalar(v, s float64, unit string) (*QFloat, error) {
	return newQFloat(f.cfg, v, s, unit)
}

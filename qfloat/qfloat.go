// SPDX-License-Identifier: MIT

// Package qfloat - the QFloat value: nominal array, 1-sigma uncertainty,
// physical unit.
//
// Purpose:
//   - Bundle value, uncertainty and unit so every operation carries all three.
//   - Stay immutable: arrays are immutable and every method returns a new QFloat.
//
// AI-Hints:
//   - q.std is nil when the value was created without uncertainty tracking;
//     read it through stdOrZeros().
//   - Plain numbers and arrays used as operands become dimensionless values
//     with zero uncertainty (coerce).

package qfloat

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/units"
)

// QFloat is an immutable quantity with uncertainty and unit.
type QFloat struct {
	nominal *ndarray.Array
	std     *ndarray.Array
	unit    units.Unit
	cfg     *settings
}

// New builds a QFloat.
//
// Inputs:
//   - nominal: a number, slice or *ndarray.Array (see ndarray.From).
//   - uncertainty: nil (zeros), a scalar (broadcast) or an array that
//     broadcasts to the nominal shape.
//   - unit: a units.Parse expression; "" is dimensionless.
//
// Errors: ErrUnsupportedOperand, ErrShapeMismatch, ErrNegativeUncertainty,
// ErrUnitIncompatible (unit parse failure).
func New(nominal, uncertainty any, unit string, opts ...Option) (*QFloat, error) {
	return newQFloat(settingsFor(opts), nominal, uncertainty, unit)
}

// FromArrays builds a QFloat from arrays and an already parsed unit.
// A nil uncertainty means zeros.
func FromArrays(nominal, uncertainty *ndarray.Array, u units.Unit, opts ...Option) (*QFloat, error) {
	return fromArrays(settingsFor(opts), nominal, uncertainty, u)
}

// Scalar builds a 0-d QFloat.
func Scalar(v, s float64, unit string) (*QFloat, error) {
	return newQFloat(defaultSettings, v, s, unit)
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew(nominal, uncertainty any, unit string, opts ...Option) *QFloat {
	q, err := New(nominal, uncertainty, unit, opts...)
	if err != nil {
		panic(err)
	}

	return q
}

func newQFloat(cfg *settings, nominal, uncertainty any, unit string) (*QFloat, error) {
	nom, err := ndarray.From(nominal)
	if err != nil {
		return nil, qfloatErrorf(ctxNew, fmt.Errorf("%w: nominal: %w", ErrUnsupportedOperand, err))
	}
	var std *ndarray.Array
	if uncertainty != nil {
		if std, err = ndarray.From(uncertainty); err != nil {
			return nil, qfloatErrorf(ctxNew, fmt.Errorf("%w: uncertainty: %w", ErrUnsupportedOperand, err))
		}
	}
	u, err := units.Parse(unit)
	if err != nil {
		return nil, unitError(ctxNew, err)
	}

	return fromArrays(cfg, nom, std, u)
}

// fromArrays validates the uncertainty and assembles the value.
func fromArrays(cfg *settings, nom, std *ndarray.Array, u units.Unit) (*QFloat, error) {
	if nom == nil {
		return nil, qfloatErrorf(ctxNew, fmt.Errorf("%w: nil nominal", ErrUnsupportedOperand))
	}
	if std != nil {
		for _, s := range std.Data() {
			if s < 0 || math.IsNaN(s) {
				return nil, qfloatErrorf(ctxNew, fmt.Errorf("%w: %g", ErrNegativeUncertainty, s))
			}
		}
		b, err := std.BroadcastTo(nom.Shape()...)
		if err != nil {
			return nil, qfloatErrorf(ctxNew, err)
		}
		std = b
	}

	return cfg.build(nom, std, u), nil
}

// build assembles a value under cfg without validation. A nil std means
// zeros; it is materialized only when uncertainties are tracked.
func (cfg *settings) build(nom, std *ndarray.Array, u units.Unit) *QFloat {
	switch {
	case !cfg.opts.track:
		std = nil
	case std == nil:
		std, _ = ndarray.Zeros(nom.Shape()...)
	}

	return &QFloat{nominal: nom, std: std, unit: u, cfg: cfg}
}

// derive builds a new value sharing the receiver's settings.
func (q *QFloat) derive(nom, std *ndarray.Array, u units.Unit) *QFloat {
	return q.config().build(nom, std, u)
}

func (q *QFloat) config() *settings {
	if q.cfg == nil {
		return defaultSettings
	}

	return q.cfg
}

// tracks reports whether uncertainties are stored and propagated.
func (q *QFloat) tracks() bool { return q.config().opts.track }

func (q *QFloat) stdOrZeros() *ndarray.Array {
	if q.std != nil {
		return q.std
	}
	z, _ := ndarray.Zeros(q.nominal.Shape()...)

	return z
}

// coerce turns an operand into a QFloat under the receiver's settings.
func (q *QFloat) coerce(v any) (*QFloat, error) {
	switch x := v.(type) {
	case *QFloat:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *QFloat", ErrUnsupportedOperand)
		}
		return x, nil
	case units.Unit:
		one := ndarray.Scalar(1)
		return q.derive(one, nil, x), nil
	default:
		a, err := ndarray.From(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedOperand, err)
		}
		return q.derive(a, nil, units.Dimensionless), nil
	}
}

// ---------- accessors ----------

// Nominal returns the nominal values.
func (q *QFloat) Nominal() *ndarray.Array { return q.nominal }

// Uncertainty returns the 1-sigma uncertainties (zeros when not tracked).
func (q *QFloat) Uncertainty() *ndarray.Array { return q.stdOrZeros() }

// StdDev is an alias of Uncertainty.
func (q *QFloat) StdDev() *ndarray.Array { return q.stdOrZeros() }

// Unit returns the physical unit.
func (q *QFloat) Unit() units.Unit { return q.unit }

// Shape returns the array shape.
func (q *QFloat) Shape() []int { return q.nominal.Shape() }

// Size returns the number of elements.
func (q *QFloat) Size() int { return q.nominal.Size() }

// Ndim returns the number of axes.
func (q *QFloat) Ndim() int { return q.nominal.Ndim() }

// Item returns nominal and uncertainty of a one-element value.
func (q *QFloat) Item() (float64, float64, error) {
	v, err := q.nominal.Item()
	if err != nil {
		return 0, 0, err
	}
	s, err := q.stdOrZeros().Item()
	if err != nil {
		return 0, 0, err
	}

	return v, s, nil
}

// String renders "nominal+-uncertainty unit", e.g. "1+-0.1 m" or
// "[1 2]+-[0.1 0.2] m".
func (q *QFloat) String() string {
	var sb strings.Builder
	sb.WriteString(q.nominal.String())
	sb.WriteString("+-")
	sb.WriteString(q.stdOrZeros().String())
	if u := q.unit.String(); u != "" {
		sb.WriteString(" ")
		sb.WriteString(u)
	}

	return sb.String()
}

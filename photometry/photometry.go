// SPDX-License-Identifier: MIT

// Package photometry is the numeric boundary of aperture photometry: it
// turns measured fluxes and magnitudes into qfloat values and derives
// instrumental magnitudes with propagated uncertainties.
//
// Pixel statistics, source detection and catalog queries live outside this
// module; callers hand over plain slices.
package photometry

import (
	"fmt"

	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/qfloat"
	"github.com/katalvlaran/astrokit/units"
)

// Pogson is the magnitude scale factor −2.5 in m = −2.5·log10(F) + zp.
const Pogson = -2.5

// Flux wraps aperture sums and their errors, e.g. unit "adu" or "electron / s".
// A nil fluxErr means zero uncertainty.
func Flux(flux, fluxErr []float64, unit string, opts ...qfloat.Option) (*qfloat.QFloat, error) {
	var std any
	if fluxErr != nil {
		std = fluxErr
	}
	q, err := qfloat.New(flux, std, unit, opts...)
	if err != nil {
		return nil, fmt.Errorf("photometry: flux: %w", err)
	}

	return q, nil
}

// Magnitudes wraps magnitudes and their errors in mag.
func Magnitudes(mag, magErr []float64, opts ...qfloat.Option) (*qfloat.QFloat, error) {
	var std any
	if magErr != nil {
		std = magErr
	}
	q, err := qfloat.New(mag, std, "mag", opts...)
	if err != nil {
		return nil, fmt.Errorf("photometry: magnitudes: %w", err)
	}

	return q, nil
}

// InstrumentalMagnitude returns −2.5·log10(flux / 1 unit) + zeroPoint in mag.
// The flux is read in its own unit; zeroPoint must be convertible to mag
// (nil means 0 mag). Non-positive fluxes yield NaN magnitudes, not errors.
//
// Implementation:
//   - Stage 1: strip the flux unit by dividing by one unit of itself.
//   - Stage 2: log10 and scaling through the ufunc registry, so σ follows.
//   - Stage 3: attach mag and add the zero point.
func InstrumentalMagnitude(flux, zeroPoint *qfloat.QFloat) (*qfloat.QFloat, error) {
	if flux == nil {
		return nil, fmt.Errorf("photometry: instrumental magnitude: %w", qfloat.ErrUnsupportedOperand)
	}
	ratio, err := flux.Div(flux.Unit())
	if err != nil {
		return nil, fmt.Errorf("photometry: instrumental magnitude: %w", err)
	}
	lg, err := ndarray.Log10(ratio)
	if err != nil {
		return nil, fmt.Errorf("photometry: instrumental magnitude: %w", err)
	}
	m, err := lg.Mul(Pogson)
	if err != nil {
		return nil, fmt.Errorf("photometry: instrumental magnitude: %w", err)
	}
	if m, err = m.Mul(units.Magnitude); err != nil {
		return nil, fmt.Errorf("photometry: instrumental magnitude: %w", err)
	}
	if zeroPoint == nil {
		return m, nil
	}
	if m, err = m.Add(zeroPoint); err != nil {
		return nil, fmt.Errorf("photometry: zero point: %w", err)
	}

	return m, nil
}

// SPDX-License-Identifier: MIT

// Package units - Unit value, composition and conversion.
//
// Purpose:
//   - Keep dimension bookkeeping in gonum's unit.Dimensions and only add the
//     scale factor and symbol terms a measurement unit needs.
//   - Stay immutable: every method returns a new Unit, maps and slices are copied.
//
// AI-Hints:
//   - Names are rendered from symbol terms ("km / s", "m^2", "1 / s"), so
//     String() output always parses back with Parse.

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// scaleTol is the relative tolerance used by Equal on scale factors.
const scaleTol = 1e-12

// Unit is an immutable physical unit. The zero value is dimensionless.
type Unit struct {
	terms []term
	scale float64
	dims  unit.Dimensions
}

// term is one registered symbol raised to an integer power.
type term struct {
	sym string
	exp int
}

// Define returns a unit with symbol name equal to scale times the coherent
// SI unit of dims. Zero exponents are dropped.
func Define(name string, scale float64, dims unit.Dimensions) Unit {
	return Unit{terms: []term{{sym: name, exp: 1}}, scale: scale, dims: normalize(dims)}
}

// Name returns the display name ("" for the plain dimensionless unit).
func (u Unit) Name() string { return u.String() }

// String renders the unit, positive powers first and negative powers after
// a " / " separator.
func (u Unit) String() string {
	var num, den []string
	for _, t := range u.terms {
		switch {
		case t.exp > 0:
			num = append(num, powName(t.sym, t.exp))
		case t.exp < 0:
			den = append(den, powName(t.sym, -t.exp))
		}
	}
	if len(den) == 0 {
		return strings.Join(num, " ")
	}
	head := strings.Join(num, " ")
	if head == "" {
		head = "1"
	}

	return head + " / " + strings.Join(den, " ")
}

func powName(sym string, exp int) string {
	if exp == 1 {
		return sym
	}

	return sym + "^" + strconv.Itoa(exp)
}

// Scale returns the factor to the coherent SI unit of the same dimensions.
func (u Unit) Scale() float64 {
	if u.scale == 0 {
		return 1
	}

	return u.scale
}

// Dimensions returns a copy of the dimension exponents.
func (u Unit) Dimensions() unit.Dimensions {
	return normalize(u.dims)
}

// IsDimensionless reports whether u carries no dimensions (any scale).
func (u Unit) IsDimensionless() bool { return len(u.dims) == 0 }

// IsAngle reports whether u is a plane angle.
func (u Unit) IsAngle() bool {
	return len(u.dims) == 1 && u.dims[unit.AngleDim] == 1
}

// SameDimensions reports whether u and v measure the same physical quantity.
func (u Unit) SameDimensions(v Unit) bool {
	if len(u.dims) == 0 || len(v.dims) == 0 {
		return len(u.dims) == len(v.dims)
	}

	return unit.DimensionsMatch(unit.New(1, u.dims), unit.New(1, v.dims))
}

// Equal reports equal dimensions and scales within a 1e-12 relative
// tolerance. Names are cosmetic and ignored.
func (u Unit) Equal(v Unit) bool {
	if !u.SameDimensions(v) {
		return false
	}
	a, b := u.Scale(), v.Scale()

	return math.Abs(a-b) <= scaleTol*math.Max(math.Abs(a), math.Abs(b))
}

// Mul returns the product unit u·v.
//
// gonum's Unit.Mul writes into the receiver's dimension map, so both sides
// get a fresh non-nil copy; the zero Unit carries a nil map.
func (u Unit) Mul(v Unit) Unit {
	dims := unit.New(1, normalize(u.dims)).Mul(unit.New(1, normalize(v.dims))).Dimensions()

	return Unit{terms: mergeTerms(u.terms, v.terms, 1), scale: u.Scale() * v.Scale(), dims: normalize(dims)}
}

// Div returns the quotient unit u/v.
func (u Unit) Div(v Unit) Unit {
	dims := unit.New(1, normalize(u.dims)).Div(unit.New(1, normalize(v.dims))).Dimensions()

	return Unit{terms: mergeTerms(u.terms, v.terms, -1), scale: u.Scale() / v.Scale(), dims: normalize(dims)}
}

// Pow returns u raised to an integer power. Pow(0) is Dimensionless.
func (u Unit) Pow(n int) Unit {
	if n == 0 {
		return Dimensionless
	}
	dims := make(unit.Dimensions, len(u.dims))
	for d, e := range u.dims {
		dims[d] = e * n
	}

	return Unit{terms: mergeTerms(nil, u.terms, n), scale: math.Pow(u.Scale(), float64(n)), dims: dims}
}

// Root returns the n-th root of u. Every dimension and symbol exponent must
// be divisible by n (ErrIncompatible otherwise).
func (u Unit) Root(n int) (Unit, error) {
	if n <= 0 {
		return Unit{}, unitsErrorf(ctxRoot, fmt.Errorf("%w: root %d", ErrBadExponent, n))
	}
	dims := make(unit.Dimensions, len(u.dims))
	for d, e := range u.dims {
		if e%n != 0 {
			return Unit{}, unitsErrorf(ctxRoot, fmt.Errorf("%w: root %d of %s", ErrIncompatible, n, describe(u)))
		}
		dims[d] = e / n
	}
	terms := make([]term, len(u.terms))
	for i, t := range u.terms {
		if t.exp%n != 0 {
			return Unit{}, unitsErrorf(ctxRoot, fmt.Errorf("%w: root %d of %s", ErrIncompatible, n, describe(u)))
		}
		terms[i] = term{sym: t.sym, exp: t.exp / n}
	}

	return Unit{terms: terms, scale: math.Pow(u.Scale(), 1/float64(n)), dims: dims}, nil
}

// Factor returns the multiplier converting values in from into values in to.
//
// Errors: ErrIncompatible when the dimensions differ.
func Factor(from, to Unit) (float64, error) {
	if !from.SameDimensions(to) {
		return 0, unitsErrorf(ctxFactor, fmt.Errorf("%w: %s to %s", ErrIncompatible, describe(from), describe(to)))
	}

	return from.Scale() / to.Scale(), nil
}

// describe names a unit for error messages.
func describe(u Unit) string {
	if s := u.String(); s != "" {
		return strconv.Quote(s)
	}
	if len(u.dims) == 0 {
		return "dimensionless"
	}

	return u.dims.String()
}

// normalize copies d without zero exponents.
func normalize(d unit.Dimensions) unit.Dimensions {
	out := make(unit.Dimensions, len(d))
	for k, v := range d {
		if v != 0 {
			out[k] = v
		}
	}

	return out
}

// mergeTerms returns a + k·b keeping first-seen symbol order and dropping
// zero powers.
func mergeTerms(a, b []term, k int) []term {
	out := make([]term, 0, len(a)+len(b))
	out = append(out, a...)
	for _, t := range b {
		found := false
		for i := range out {
			if out[i].sym == t.sym {
				out[i].exp += k * t.exp
				found = true
				break
			}
		}
		if !found {
			out = append(out, term{sym: t.sym, exp: k * t.exp})
		}
	}
	kept := out[:0]
	for _, t := range out {
		if t.exp != 0 {
			kept = append(kept, t)
		}
	}

	return kept
}

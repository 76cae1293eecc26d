// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a unit from a string expression.
//
// Grammar: factors separated by spaces or '*', optionally followed by '/'
// groups that divide; every factor is a registered symbol with an optional
// integer exponent written as "^n", "**n" or a trailing signed integer
// ("m2", "s-1"). Parentheses are not supported.
//
// "", "dimensionless", "none" and "1" parse to Dimensionless. The returned
// unit renders canonically ("km s-1" prints as "km / s").
//
// Errors: ErrUnknownUnit, ErrBadExponent.
func Parse(s string) (Unit, error) {
	expr := strings.TrimSpace(s)
	switch expr {
	case "", "dimensionless", "none", "1":
		return Dimensionless, nil
	}
	if u, ok := registry[expr]; ok {
		return u, nil
	}

	expr = strings.ReplaceAll(expr, "**", "^")
	groups := strings.Split(expr, "/")
	out := Dimensionless
	for gi, g := range groups {
		fields := strings.FieldsFunc(g, func(r rune) bool { return r == ' ' || r == '*' || r == '\t' })
		if len(fields) == 0 {
			if gi == 0 {
				continue // "/s" reads as 1/s
			}
			return Unit{}, unitsErrorf(ctxParse, fmt.Errorf("%w: empty factor in %q", ErrUnknownUnit, s))
		}
		for _, f := range fields {
			if f == "1" {
				continue
			}
			u, err := parseFactor(f)
			if err != nil {
				return Unit{}, unitsErrorf(ctxParse, fmt.Errorf("%w in %q", err, s))
			}
			if gi == 0 {
				out = out.Mul(u)
			} else {
				out = out.Div(u)
			}
		}
	}

	return out, nil
}

// MustParse is Parse for package-level literals; it panics on error.
func MustParse(s string) Unit {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return u
}

// parseFactor resolves one "symbol[exponent]" token.
func parseFactor(tok string) (Unit, error) {
	if u, ok := registry[tok]; ok {
		return u, nil
	}
	sym, exp, err := splitExponent(tok)
	if err != nil {
		return Unit{}, err
	}
	u, ok := registry[sym]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, sym)
	}

	return u.Pow(exp), nil
}

// splitExponent separates "m^2", "m2" and "s-1" into symbol and exponent.
func splitExponent(tok string) (string, int, error) {
	if i := strings.IndexByte(tok, '^'); i >= 0 {
		n, err := strconv.Atoi(strings.Trim(tok[i+1:], "()"))
		if err != nil {
			return "", 0, fmt.Errorf("%w: %q", ErrBadExponent, tok)
		}
		return tok[:i], n, nil
	}
	i := len(tok)
	for i > 0 && tok[i-1] >= '0' && tok[i-1] <= '9' {
		i--
	}
	if i == len(tok) {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownUnit, tok)
	}
	if i > 0 && (tok[i-1] == '-' || tok[i-1] == '+') {
		i--
	}
	if i == 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownUnit, tok)
	}
	n, err := strconv.Atoi(tok[i:])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrBadExponent, tok)
	}

	return tok[:i], n, nil
}

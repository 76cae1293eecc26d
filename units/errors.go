// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned by Parse for a symbol absent from the registry.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrIncompatible indicates units whose dimensions cannot be reconciled
	// (conversion between different dimensions, odd root of an odd exponent).
	ErrIncompatible = errors.New("units: incompatible dimensions")

	// ErrBadExponent indicates an unparsable or zero root exponent.
	ErrBadExponent = errors.New("units: invalid exponent")
)

const (
	ctxParse  = "Parse"
	ctxFactor = "Factor"
	ctxRoot   = "Root"
)

func unitsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

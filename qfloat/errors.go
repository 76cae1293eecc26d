// SPDX-License-Identifier: MIT

package qfloat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/astrokit/ndarray"
)

var (
	// ErrUnitIncompatible indicates operands whose units cannot be
	// reconciled for the requested operation. When the cause is a dimension
	// mismatch the error also matches units.ErrIncompatible.
	ErrUnitIncompatible = errors.New("qfloat: incompatible units")

	// ErrNotImplemented marks a numeric-library function with no quantity
	// implementation. It is the same sentinel ndarray uses.
	ErrNotImplemented = ndarray.ErrNotImplemented

	// ErrShapeMismatch indicates shapes that do not broadcast. It is the same
	// sentinel ndarray uses.
	ErrShapeMismatch = ndarray.ErrShapeMismatch

	// ErrNegativeUncertainty is returned by constructors for a negative or
	// NaN uncertainty.
	ErrNegativeUncertainty = errors.New("qfloat: uncertainty must be non-negative")

	// ErrUnsupportedOperand indicates an operand that is neither a *QFloat
	// nor convertible to an array.
	ErrUnsupportedOperand = errors.New("qfloat: unsupported operand")
)

const (
	ctxNew     = "New"
	ctxConvert = "To"
	ctxBinary  = "QFloat"
	ctxCompare = "Compare"
	ctxJoin    = "Join"
	ctxUFunc   = "UFunc"
	ctxJSON    = "JSON"
)

func qfloatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// unitError wraps cause under ErrUnitIncompatible, keeping cause matchable.
func unitError(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrUnitIncompatible, cause)
}

// SPDX-License-Identifier: MIT

package deriv

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperation is returned for an operation name absent from the
	// derivative catalog. It is detected before any computation.
	ErrUnknownOperation = errors.New("deriv: unknown operation")

	// ErrLengthMismatch indicates value/uncertainty slices of different lengths.
	ErrLengthMismatch = errors.New("deriv: length mismatch")

	// ErrArgument indicates a differentiation variable that is not present
	// among the function arguments.
	ErrArgument = errors.New("deriv: missing differentiation argument")
)

const (
	ctxLookup      = "Lookup"
	ctxDerivatives = "Derivatives"
	ctxPropagate   = "Propagate2"
	ctxUnary       = "Unary"
	ctxNumerical   = "NumericalDerivative"
)

func derivErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

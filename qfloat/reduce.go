// SPDX-License-Identifier: MIT

package qfloat

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/astrokit/ndarray"
)

// Sum adds all elements into a 0-d value. Uncertainties add in
// quadrature: σ = sqrt(Σσᵢ²).
func (q *QFloat) Sum() *QFloat {
	nom := ndarray.Scalar(q.nominal.Sum())
	if !q.tracks() {
		return q.derive(nom, nil, q.unit)
	}

	return q.derive(nom, ndarray.Scalar(floats.Norm(q.std.Data(), 2)), q.unit)
}

// Mean averages all elements into a 0-d value with σ = sqrt(Σσᵢ²)/n.
// The mean of an empty value is NaN with zero uncertainty.
func (q *QFloat) Mean() *QFloat {
	n := q.Size()
	nom := ndarray.Scalar(q.nominal.Mean())
	if !q.tracks() || n == 0 {
		return q.derive(nom, nil, q.unit)
	}

	return q.derive(nom, ndarray.Scalar(floats.Norm(q.std.Data(), 2)/float64(n)), q.unit)
}

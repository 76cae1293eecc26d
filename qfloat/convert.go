// SPDX-License-Identifier: MIT

package qfloat

import (
	"github.com/katalvlaran/astrokit/units"
)

// To converts q into the unit parsed from s.
func (q *QFloat) To(s string) (*QFloat, error) {
	u, err := units.Parse(s)
	if err != nil {
		return nil, unitError(ctxConvert, err)
	}

	return q.ToUnit(u)
}

// ToUnit converts q into u, scaling nominal and uncertainty by the same
// factor. Converting into an equal unit only relabels.
//
// Errors: ErrUnitIncompatible (also matching units.ErrIncompatible).
func (q *QFloat) ToUnit(u units.Unit) (*QFloat, error) {
	f, err := units.Factor(q.unit, u)
	if err != nil {
		return nil, unitError(ctxConvert, err)
	}
	if f == 1 {
		return q.derive(q.nominal, q.std, u), nil
	}
	var std = q.std
	if std != nil {
		std = std.Scale(f)
	}

	return q.derive(q.nominal.Scale(f), std, u), nil
}

// SPDX-License-Identifier: MIT

package qfloat

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/astrokit/ndarray"
	"github.com/katalvlaran/astrokit/units"
)

// wireQFloat is the JSON form of a QFloat. Data is flattened row-major.
type wireQFloat struct {
	Nominal     []float64 `json:"nominal"`
	Uncertainty []float64 `json:"uncertainty"`
	Shape       []int     `json:"shape"`
	Unit        string    `json:"unit"`
}

// MarshalJSON encodes q as
// {"nominal":[...],"uncertainty":[...],"shape":[...],"unit":"..."}.
// NaN and infinite values cannot be represented in JSON and fail to encode.
func (q *QFloat) MarshalJSON() ([]byte, error) {
	b, err := sonic.Marshal(wireQFloat{
		Nominal:     q.nominal.Data(),
		Uncertainty: q.stdOrZeros().Data(),
		Shape:       q.nominal.Shape(),
		Unit:        q.unit.String(),
	})
	if err != nil {
		return nil, qfloatErrorf(ctxJSON, err)
	}

	return b, nil
}

// UnmarshalJSON decodes the form written by MarshalJSON under the
// receiver's settings: a zero QFloat decodes with the defaults, a value from
// a WithoutUncertainty factory drops the decoded uncertainty. A missing
// uncertainty reads as zeros.
func (q *QFloat) UnmarshalJSON(data []byte) error {
	var w wireQFloat
	if err := sonic.Unmarshal(data, &w); err != nil {
		return qfloatErrorf(ctxJSON, err)
	}
	if w.Shape == nil {
		w.Shape = []int{len(w.Nominal)}
	}
	nom, err := ndarray.New(w.Shape, w.Nominal)
	if err != nil {
		return qfloatErrorf(ctxJSON, err)
	}
	var std *ndarray.Array
	if len(w.Uncertainty) > 0 {
		if std, err = ndarray.New(w.Shape, w.Uncertainty); err != nil {
			return qfloatErrorf(ctxJSON, fmt.Errorf("uncertainty: %w", err))
		}
	}
	u, err := units.Parse(w.Unit)
	if err != nil {
		return unitError(ctxJSON, err)
	}
	v, err := fromArrays(q.config(), nom, std, u)
	if err != nil {
		return qfloatErrorf(ctxJSON, err)
	}
	*q = *v

	return nil
}

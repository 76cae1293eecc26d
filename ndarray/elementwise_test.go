// Package ndarray_test contains unit tests for element-wise kernels, ufuncs and dispatch.
package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrokit/ndarray"
)

// TestRoundHalfEven checks numpy-style rounding, including negative decimals.
func TestArray_RoundHalfEven(t *testing.T) {
	t.Parallel()

	a := ndarray.FromSlice([]float64{1.02549, 0.135964})
	assert.InDeltaSlice(t, []float64{1.03, 0.14}, a.Round(2).Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0}, a.Round(0).Data(), 0)

	halves := ndarray.FromSlice([]float64{0.5, 1.5, 2.5})
	assert.Equal(t, []float64{0, 2, 2}, halves.Round(0).Data())

	assert.InDeltaSlice(t, []float64{1230}, ndarray.FromSlice([]float64{1234}).Round(-1).Data(), 1e-9)
}

func TestArray_Clip(t *testing.T) {
	t.Parallel()

	c, err := ndarray.FromSlice([]float64{1, 5, 10}).Clip(2, 8)
	require.NoError(t, err)
	requireArray(t, c, []int{3}, 2, 5, 8)

	_, err = seq(t, 2).Clip(3, 1)
	require.ErrorIs(t, err, ndarray.ErrBadParam)
	_, err = seq(t, 2).Clip(math.NaN(), 1)
	require.ErrorIs(t, err, ndarray.ErrBadParam)
}

func TestArray_Reductions(t *testing.T) {
	t.Parallel()

	a := seq(t, 2, 2)
	require.Equal(t, 10.0, a.Sum())
	require.Equal(t, 2.5, a.Mean())
	require.True(t, math.IsNaN(ndarray.Arange(0).Mean()))
	requireArray(t, a.Scale(2), []int{2, 2}, 2, 4, 6, 8)
}

func TestArray_UFunc(t *testing.T) {
	t.Parallel()

	a := ndarray.FromSlice([]float64{0, math.Pi / 2})
	s, err := a.UFunc(ndarray.UFuncSin)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1}, s.Data(), 1e-15)

	d, err := ndarray.Degrees(a)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 90}, d.Data(), 1e-12)

	_, err = a.UFunc("cbrt")
	require.ErrorIs(t, err, ndarray.ErrNotImplemented)
	_, err = a.UFunc(ndarray.UFuncClip, 1)
	require.ErrorIs(t, err, ndarray.ErrBadParam)

	c, err := ndarray.Clip(seq(t, 4), 2, 3)
	require.NoError(t, err)
	requireArray(t, c, []int{4}, 2, 2, 3, 3)
}

// TestGenericDispatch verifies that package-level functions accept plain arrays.
func TestOperand_GenericDispatch(t *testing.T) {
	t.Parallel()

	f, err := ndarray.Flip(seq(t, 3))
	require.NoError(t, err)
	requireArray(t, f, []int{3}, 3, 2, 1)

	r, err := ndarray.Around(ndarray.FromSlice([]float64{2.5}), 0)
	require.NoError(t, err)
	requireArray(t, r, []int{1}, 2)

	c, err := ndarray.Concat([]*ndarray.Array{seq(t, 2), seq(t, 1), seq(t, 2)}, 0)
	require.NoError(t, err)
	requireArray(t, c, []int{5}, 1, 2, 1, 1, 2)

	ins, err := ndarray.Insert(seq(t, 3), 0, ndarray.Scalar(0))
	require.NoError(t, err)
	requireArray(t, ins, []int{4}, 0, 1, 2, 3)

	require.Equal(t, []int{2, 3}, ndarray.ShapeOf(seq(t, 2, 3)))
	require.Equal(t, 6, ndarray.SizeOf(seq(t, 2, 3)))

	_, err = ndarray.Call(seq(t, 3), "atleast_1d")
	require.ErrorIs(t, err, ndarray.ErrNotImplemented)
	_, err = ndarray.Concat([]*ndarray.Array{}, 0)
	require.ErrorIs(t, err, ndarray.ErrBadParam)
}

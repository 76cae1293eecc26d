// Package ndarray_test contains unit tests for Array construction and accessors.
package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrokit/ndarray"
)

// TestNewRejectsBadInput ensures New validates the shape and the data length.
func TestArray_NewRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := ndarray.New([]int{2, -1}, nil)
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	_, err = ndarray.New([]int{2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestNewCopiesInput verifies that later writes to the caller's slice are not observed.
func TestArray_NewCopiesInput(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3}
	a, err := ndarray.New([]int{3}, src)
	require.NoError(t, err)
	src[0] = 99

	data := a.Data()
	data[1] = 42
	requireArray(t, a, []int{3}, 1, 2, 3)
}

func TestArray_From(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    any
		shape []int
		data  []float64
		err   error
	}{
		{name: "float", in: 3.5, shape: []int{}, data: []float64{3.5}},
		{name: "int", in: 2, shape: []int{}, data: []float64{2}},
		{name: "ints", in: []int{1, 2}, shape: []int{2}, data: []float64{1, 2}},
		{name: "floats", in: []float64{1, 2, 3}, shape: []int{3}, data: []float64{1, 2, 3}},
		{name: "rows", in: [][]float64{{1, 2}, {3, 4}}, shape: []int{2, 2}, data: []float64{1, 2, 3, 4}},
		{name: "cube", in: [][][]float64{{{1}, {2}}, {{3}, {4}}}, shape: []int{2, 2, 1}, data: []float64{1, 2, 3, 4}},
		{name: "ragged", in: [][]float64{{1, 2}, {3}}, err: ndarray.ErrShapeMismatch},
		{name: "string", in: "m", err: ndarray.ErrUnsupportedType},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := ndarray.From(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			requireArray(t, a, tc.shape, tc.data...)
		})
	}
}

func TestArray_AtAndItem(t *testing.T) {
	t.Parallel()

	a := seq(t, 2, 3)
	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.At(0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	v, err = ndarray.Scalar(5).Item()
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = a.Item()
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestArray_Constructors(t *testing.T) {
	t.Parallel()

	z, err := ndarray.Zeros(2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, z.Size())
	require.Equal(t, 2, z.Ndim())

	f, err := ndarray.Full(7, 2)
	require.NoError(t, err)
	requireArray(t, f, []int{2}, 7, 7)

	_, err = ndarray.Full(1, -2)
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	requireArray(t, ndarray.Arange(3), []int{3}, 0, 1, 2)
	requireArray(t, ndarray.Arange(-1), []int{0})
}

func TestArray_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "[[1 2] [3 4]]", seq(t, 2, 2).String())
	require.Equal(t, "1.5", ndarray.Scalar(1.5).String())
	require.Equal(t, "[]", ndarray.Arange(0).String())
}

func TestArray_Equal(t *testing.T) {
	t.Parallel()

	require.True(t, seq(t, 2, 2).Equal(seq(t, 2, 2)))
	require.False(t, seq(t, 2, 2).Equal(seq(t, 4)))
	nan := ndarray.Scalar(math.NaN())
	require.False(t, nan.Equal(nan))
	require.True(t, seq(t, 3).EqualApprox(mustNew(t, []int{3}, 1, 2, 3.0000001), 1e-6))
}

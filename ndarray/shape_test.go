// Package ndarray_test contains unit tests for shape manipulation and reordering.
package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrokit/ndarray"
)

func TestArray_Reshape(t *testing.T) {
	t.Parallel()

	a := seq(t, 2, 3)
	r, err := a.Reshape(3, -1)
	require.NoError(t, err)
	requireArray(t, r, []int{3, 2}, 1, 2, 3, 4, 5, 6)

	_, err = a.Reshape(-1, -1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
	_, err = a.Reshape(4)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	_, err = a.Reshape(0, -1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	requireArray(t, a.Ravel(), []int{6}, 1, 2, 3, 4, 5, 6)
}

func TestArray_TransposeFamily(t *testing.T) {
	t.Parallel()

	a := seq(t, 2, 3)
	tr, err := a.Transpose()
	require.NoError(t, err)
	requireArray(t, tr, []int{3, 2}, 1, 4, 2, 5, 3, 6)

	sw, err := a.SwapAxes(0, -1)
	require.NoError(t, err)
	require.True(t, sw.Equal(tr))

	mv, err := a.MoveAxis([]int{0}, []int{1})
	require.NoError(t, err)
	require.True(t, mv.Equal(tr))

	_, err = a.Transpose(0, 0)
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = a.SwapAxes(0, 2)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestArray_MoveAxisShapes(t *testing.T) {
	t.Parallel()

	z, err := ndarray.Zeros(3, 4, 5)
	require.NoError(t, err)

	cases := []struct {
		src, dst []int
		want     []int
	}{
		{src: []int{0}, dst: []int{-1}, want: []int{4, 5, 3}},
		{src: []int{-1}, dst: []int{0}, want: []int{5, 3, 4}},
		{src: []int{0, 1}, dst: []int{-1, -2}, want: []int{5, 4, 3}},
		{src: []int{0, 1, 2}, dst: []int{-1, -2, -3}, want: []int{5, 4, 3}},
	}
	for _, tc := range cases {
		got, err := z.MoveAxis(tc.src, tc.dst)
		require.NoError(t, err)
		require.Equal(t, tc.want, got.Shape())
	}

	_, err = z.MoveAxis([]int{0}, []int{1, 2})
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestArray_RollAxisShapes(t *testing.T) {
	t.Parallel()

	z, err := ndarray.Zeros(3, 4, 5, 6)
	require.NoError(t, err)

	cases := []struct {
		axis, start int
		want        []int
	}{
		{axis: 3, start: 1, want: []int{3, 6, 4, 5}},
		{axis: 2, start: 0, want: []int{5, 3, 4, 6}},
		{axis: 1, start: 4, want: []int{3, 5, 6, 4}},
	}
	for _, tc := range cases {
		got, err := z.RollAxis(tc.axis, tc.start)
		require.NoError(t, err)
		require.Equal(t, tc.want, got.Shape())
	}

	_, err = z.RollAxis(0, 5)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestArray_ExpandDimsSqueeze(t *testing.T) {
	t.Parallel()

	a := seq(t, 2)
	e, err := a.ExpandDims(2, 0)
	require.NoError(t, err)
	requireArray(t, e, []int{1, 2, 1}, 1, 2)

	_, err = a.ExpandDims()
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = a.ExpandDims(3)
	require.ErrorIs(t, err, ndarray.ErrAxis)

	s, err := e.Squeeze()
	require.NoError(t, err)
	requireArray(t, s, []int{2}, 1, 2)

	s, err = e.Squeeze(0)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, s.Shape())

	_, err = e.Squeeze(1)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestArray_Resize(t *testing.T) {
	t.Parallel()

	r, err := seq(t, 2, 2).Resize(2, 3)
	require.NoError(t, err)
	requireArray(t, r, []int{2, 3}, 1, 2, 3, 4, 1, 2)

	r, err = seq(t, 2, 2).Resize(0)
	require.NoError(t, err)
	requireArray(t, r, []int{0})

	_, err = seq(t, 2).Resize(-1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestArray_Flip(t *testing.T) {
	t.Parallel()

	f, err := seq(t, 3).Flip()
	require.NoError(t, err)
	requireArray(t, f, []int{3}, 3, 2, 1)

	m := seq(t, 2, 2)
	f, err = m.Flip()
	require.NoError(t, err)
	requireArray(t, f, []int{2, 2}, 4, 3, 2, 1)

	f, err = m.FlipUD()
	require.NoError(t, err)
	requireArray(t, f, []int{2, 2}, 3, 4, 1, 2)

	f, err = m.FlipLR()
	require.NoError(t, err)
	requireArray(t, f, []int{2, 2}, 2, 1, 4, 3)

	_, err = seq(t, 3).FlipLR()
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = ndarray.Scalar(1).FlipUD()
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestArray_Roll(t *testing.T) {
	t.Parallel()

	r, err := seq(t, 5).Roll(2)
	require.NoError(t, err)
	requireArray(t, r, []int{5}, 4, 5, 1, 2, 3)

	r, err = seq(t, 5).Roll(-1)
	require.NoError(t, err)
	requireArray(t, r, []int{5}, 2, 3, 4, 5, 1)

	r, err = seq(t, 2, 3).Roll(1)
	require.NoError(t, err)
	requireArray(t, r, []int{2, 3}, 6, 1, 2, 3, 4, 5)

	r, err = seq(t, 2, 3).Roll(1, 1)
	require.NoError(t, err)
	requireArray(t, r, []int{2, 3}, 3, 1, 2, 6, 4, 5)
}

func TestArray_Rot90(t *testing.T) {
	t.Parallel()

	m := seq(t, 2, 2)
	cases := []struct {
		k    int
		want []float64
	}{
		{k: 0, want: []float64{1, 2, 3, 4}},
		{k: 1, want: []float64{2, 4, 1, 3}},
		{k: 2, want: []float64{4, 3, 2, 1}},
		{k: 3, want: []float64{3, 1, 4, 2}},
		{k: -1, want: []float64{3, 1, 4, 2}},
		{k: 5, want: []float64{2, 4, 1, 3}},
	}
	for _, tc := range cases {
		r, err := m.Rot90(tc.k, 0, 1)
		require.NoError(t, err)
		requireArray(t, r, []int{2, 2}, tc.want...)
	}

	r, err := seq(t, 2, 3).Rot90(1, 0, 1)
	require.NoError(t, err)
	requireArray(t, r, []int{3, 2}, 3, 6, 2, 5, 1, 4)

	_, err = seq(t, 3).Rot90(1, 0, 1)
	require.ErrorIs(t, err, ndarray.ErrAxis)
	_, err = m.Rot90(1, 0, 0)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestArray_TileRepeat(t *testing.T) {
	t.Parallel()

	tl, err := seq(t, 3).Tile(2)
	require.NoError(t, err)
	requireArray(t, tl, []int{6}, 1, 2, 3, 1, 2, 3)

	tl, err = seq(t, 3).Tile(2, 2)
	require.NoError(t, err)
	requireArray(t, tl, []int{2, 6}, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3)

	tl, err = seq(t, 2, 2).Tile(2)
	require.NoError(t, err)
	requireArray(t, tl, []int{2, 4}, 1, 2, 1, 2, 3, 4, 3, 4)

	_, err = seq(t, 3).Tile(-1)
	require.ErrorIs(t, err, ndarray.ErrBadParam)

	rp, err := seq(t, 2, 2).Repeat(2)
	require.NoError(t, err)
	requireArray(t, rp, []int{8}, 1, 1, 2, 2, 3, 3, 4, 4)

	rp, err = seq(t, 2, 2).Repeat(2, 0)
	require.NoError(t, err)
	requireArray(t, rp, []int{4, 2}, 1, 2, 1, 2, 3, 4, 3, 4)

	rp, err = seq(t, 2, 2).Repeat(2, 1)
	require.NoError(t, err)
	requireArray(t, rp, []int{2, 4}, 1, 1, 2, 2, 3, 3, 4, 4)

	_, err = seq(t, 2).Repeat(-1)
	require.ErrorIs(t, err, ndarray.ErrBadParam)
}

// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers.
//
// Purpose:
//   • Build small deterministic fixtures without error plumbing in every test.

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astrokit/ndarray"
)

// mustNew builds an array or aborts the test.
func mustNew(t *testing.T, shape []int, data ...float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(shape, data)
	require.NoError(t, err)

	return a
}

// seq returns an array of the given shape holding 1, 2, 3, ...
func seq(t *testing.T, shape ...int) *ndarray.Array {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i + 1)
	}

	return mustNew(t, shape, data...)
}

// requireArray asserts shape and flat data.
func requireArray(t *testing.T, got *ndarray.Array, shape []int, data ...float64) {
	t.Helper()
	require.Equal(t, shape, got.Shape())
	if data == nil {
		data = []float64{}
	}
	require.Equal(t, data, got.Data())
}

// SPDX-License-Identifier: MIT
// Package projection_test contains shared fixtures for projection tests.
package projection_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scissors/matrix"
)

const tolClose = 1e-9

// mustRows builds a *Dense from a row literal or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts AllClose(got, want) within an absolute tolerance.
func requireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g\ngot:\n%v\nwant:\n%v", atol, got, want)
}

// randPSD returns X·Xᵀ for a random n×k X: symmetric PSD with rank min(n,k).
func randPSD(t testing.TB, n, k int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*k)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}
	x, err := matrix.NewFromSlice(n, k, vals)
	require.NoError(t, err)
	xt, err := matrix.Transpose(x)
	require.NoError(t, err)
	g, err := matrix.Mul(x, xt)
	require.NoError(t, err)
	d, err := matrix.ToDense(g)
	require.NoError(t, err)

	return d
}

// randRows returns an r×c matrix with uniform entries in [-1, 1).
func randRows(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.NewFromSlice(r, c, vals)
	require.NoError(t, err)

	return m
}

// blockKernel is a 6×6 block-diagonal kernel of three rank-one blocks with
// eigenvalues 8, 5 and 2; its self-overlaps are exactly its diagonal.
func blockKernel(t testing.TB) *matrix.Dense {
	t.Helper()
	return mustRows(t, [][]float64{
		{4, 4, 0, 0, 0, 0},
		{4, 4, 0, 0, 0, 0},
		{0, 0, 1, 2, 0, 0},
		{0, 0, 2, 4, 0, 0},
		{0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 1, 1},
	})
}

// trueTanimoto computes K[i,j] / (K[i,i] + K[j,j] − K[i,j]).
func trueTanimoto(t testing.TB, k matrix.Matrix) *matrix.Dense {
	t.Helper()
	n := k.Rows()
	out, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			kij := mustAt(t, k, i, j)
			den := mustAt(t, k, i, i) + mustAt(t, k, j, j) - kij
			v := 0.0
			if den != 0 {
				v = kij / den
			}
			require.NoError(t, out.Set(i, j, v))
		}
	}

	return out
}

// diag copies the main diagonal of k.
func diag(t testing.TB, k matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, k.Rows())
	for i := range out {
		out[i] = mustAt(t, k, i, i)
	}

	return out
}

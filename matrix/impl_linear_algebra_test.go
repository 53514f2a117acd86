// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/scissors/matrix"
	"github.com/stretchr/testify/require"
)

// TestHelpers_InterfaceHiding_Fallback ensures that a wrapper hiding the
// concrete type forces the interface fallback path and produces the same
// results as the bare Dense.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 3, 1)
	b := RandFilledDense(t, 3, 5, 2)
	c := RandFilledDense(t, 4, 3, 3)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, fast, slow, 0, 0)

	sumFast, err := matrix.Add(a, c)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, c)
	require.NoError(t, err)
	CompareClose(t, sumFast, sumSlow, 0, 0)

	trFast, err := matrix.Transpose(a)
	require.NoError(t, err)
	trSlow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareClose(t, trFast, trSlow, 0, 0)
}

func TestAddSub(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{4, 3}, {2, 1}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 5}, {5, 5}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, diff)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, got)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_ZeroInnerDimension(t *testing.T) {
	t.Parallel()
	got, err := matrix.Mul(MustDense(t, 3, 0), MustDense(t, 0, 2))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, got)

	got, err = matrix.Mul(MustDense(t, 0, 4), MustDense(t, 4, 2))
	require.NoError(t, err)
	MustDims(t, got, 0, 2)
}

func TestMul_PropagatesNonFinite(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{0, 1}})
	b, err := matrix.NewFromRows([][]float64{{math.Inf(1)}, {1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, got, 0, 0)), "0*Inf must surface as NaN")
}

func TestTransposeScaleMatVec(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	sc, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, sc)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityDiagFilled(t *testing.T) {
	t.Parallel()
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	d, err := matrix.NewDiag([]float64{2, -3})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 0}, {0, -3}}, d)

	_, err = matrix.NewDiag([]float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	f, err := matrix.NewFilled(2, 1, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5}, {0.5}}, f)
}

// checkEigenPairs asserts A·Q ≈ Q·diag(vals) and QᵀQ ≈ I.
func checkEigenPairs(t *testing.T, a matrix.Matrix, vals []float64, q matrix.Matrix) {
	t.Helper()
	n := a.Rows()
	aq, err := matrix.Mul(a, q)
	require.NoError(t, err)
	lam, err := matrix.NewDiag(vals)
	require.NoError(t, err)
	ql, err := matrix.Mul(q, lam)
	require.NoError(t, err)
	CompareClose(t, aq, ql, 0, AtolEig)

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	CompareClose(t, qtq, id, 0, AtolEig)
}

func TestEigen_Jacobi_2x2(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{2, 1}, {1, 2}})
	vals, q, err := matrix.Eigen(a)
	require.NoError(t, err)
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	sliceClose(t, sorted, []float64{1, 3}, 0, AtolEig)
	checkEigenPairs(t, a, vals, q)
}

func TestEigen_JacobiMatchesGonum(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 8, 20} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandSymmetric(t, n, n+2, int64(n))

			jv, jq, err := matrix.Eigen(a)
			require.NoError(t, err)
			checkEigenPairs(t, a, jv, jq)

			gv, gq, err := matrix.EigenSym(a)
			require.NoError(t, err)
			checkEigenPairs(t, a, gv, gq)

			sort.Float64s(jv)
			require.True(t, sort.Float64sAreSorted(gv), "gonum values are ascending")
			sliceClose(t, jv, gv, 1e-9, AtolEig)
		})
	}
}

func TestEigen_IndefiniteAndZeroSize(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]float64{{0, 2}, {2, 0}})
	vals, q, err := matrix.Eigen(a)
	require.NoError(t, err)
	checkEigenPairs(t, a, vals, q)
	sort.Float64s(vals)
	sliceClose(t, vals, []float64{-2, 2}, 0, AtolEig)

	vals, q, err = matrix.Eigen(MustDense(t, 0, 0))
	require.NoError(t, err)
	require.Empty(t, vals)
	MustDims(t, q, 0, 0)

	vals, q, err = matrix.EigenSym(MustDense(t, 0, 0))
	require.NoError(t, err)
	require.Empty(t, vals)
	MustDims(t, q, 0, 0)
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := matrix.Eigen(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = matrix.Eigen(MustRows(t, [][]float64{{1, 2}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.EigenSym(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// One sweep cannot diagonalize a dense 6×6 matrix.
	_, _, err = matrix.Eigen(RandSymmetric(t, 6, 6, 9), matrix.WithMaxSweeps(1))
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

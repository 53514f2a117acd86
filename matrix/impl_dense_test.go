// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scissors/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{-1, 2}, {2, -1}, {-3, -3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseZeroArea(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{0, 0}, {0, 3}, {4, 0}} {
		m := MustDense(t, dims[0], dims[1])
		MustDims(t, m, dims[0], dims[1])
		require.Empty(t, m.RawData())
	}
}

func TestAtSetOutOfBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestSetRejectsNonFiniteByDefault(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	lax, err := matrix.NewFromSlice(1, 1, []float64{0}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Set(0, 0, math.Inf(1)))
	require.True(t, math.IsInf(MustAt(t, lax, 0, 0), 1))
}

func TestNewFromSlice(t *testing.T) {
	t.Parallel()
	src := []float64{1, 2, 3, 4, 5, 6}
	m := NewFilledDense(t, 2, 3, src)
	src[0] = 100 // input is copied
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err := matrix.NewFromSlice(2, 2, src)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromSlice(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	MustDims(t, m, 3, 2)
	require.Equal(t, 6.0, MustAt(t, m, 2, 1))

	_, err := matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	empty, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	MustDims(t, empty, 0, 0)
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestRowAndRawRowView(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	view := m.RawRowView(0)
	require.Equal(t, []float64{1, 2}, view)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestInducedAndLeadingCols(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Induced([]int{2, 0}, []int{1, 1})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{8, 8}, {2, 2}}, sub)

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	MustDims(t, empty, 0, 1)

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	CompareExact(t, [][]float64{{1, 2}, {4, 5}, {7, 8}}, m.LeadingCols(2))
	MustDims(t, m.LeadingCols(10), 3, 3)
	MustDims(t, m.LeadingCols(0), 3, 0)
}

func TestDoAndApply(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	var sum float64
	m.Do(func(_, _ int, v float64) bool { sum += v; return v < 2 })
	require.Equal(t, 3.0, sum) // stops after the second element

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, m)

	require.ErrorIs(t, m.Apply(func(_, _ int, _ float64) float64 { return math.NaN() }), matrix.ErrNaNInf)
}

func TestStringOutput(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]float64{{1, 2.5}, {3, 4}})
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}

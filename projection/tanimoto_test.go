// SPDX-License-Identifier: MIT
package projection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scissors/matrix"
	"github.com/katalvlaran/scissors/projection"
)

func TestVectorTanimoto_Basic(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 0}, {1, 1}})
	b := mustRows(t, [][]float64{{1, 0}, {0, 0}, {2, 2}})

	got, err := projection.VectorTanimoto(a, b, nil, nil)
	require.NoError(t, err)
	want := mustRows(t, [][]float64{
		{1, 0, 2.0 / (1 + 8 - 2)},
		{1.0 / (2 + 1 - 1), 0, 4.0 / (2 + 8 - 4)},
	})
	requireClose(t, want, got, 1e-15)
}

func TestVectorTanimoto_SwapTransposes(t *testing.T) {
	t.Parallel()
	a := randRows(t, 4, 3, 1)
	b := randRows(t, 5, 3, 2)
	ab, err := projection.VectorTanimoto(a, b, nil, nil)
	require.NoError(t, err)
	ba, err := projection.VectorTanimoto(b, a, nil, nil)
	require.NoError(t, err)
	baT, err := matrix.Transpose(ba)
	require.NoError(t, err)
	requireClose(t, ab, baT, 0)
}

func TestVectorTanimoto_SelfIsExactlySymmetric(t *testing.T) {
	t.Parallel()
	v := randRows(t, 6, 4, 3)
	sim, err := projection.VectorTanimoto(v, v, nil, nil)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		for j := 0; j < i; j++ {
			require.Equal(t, mustAt(t, sim, i, j), mustAt(t, sim, j, i))
		}
	}
}

func TestVectorTanimoto_ExplicitOverlaps(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 0}})
	got, err := projection.VectorTanimoto(a, a, []float64{2}, []float64{3})
	require.NoError(t, err)
	require.InDelta(t, 1.0/(2+3-1), mustAt(t, got, 0, 0), 1e-15)
}

func TestVectorTanimoto_ZeroWidthVectors(t *testing.T) {
	t.Parallel()
	a, err := matrix.NewDense(3, 0)
	require.NoError(t, err)
	got, err := projection.VectorTanimoto(a, a, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 3, got.Cols())
	for _, v := range got.RawData() {
		require.Zero(t, v)
	}
}

func TestVectorTanimoto_Errors(t *testing.T) {
	t.Parallel()
	a := mustRows(t, [][]float64{{1, 0}})
	b := mustRows(t, [][]float64{{1, 0, 0}})

	_, err := projection.VectorTanimoto(a, b, nil, nil)
	require.ErrorIs(t, err, projection.ErrDimensionMismatch)

	_, err = projection.VectorTanimoto(a, a, []float64{1, 2}, nil)
	require.ErrorIs(t, err, projection.ErrDimensionMismatch)

	_, err = projection.VectorTanimoto(nil, a, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = projection.VectorTanimoto(a, a, []float64{math.NaN()}, nil)
	require.ErrorIs(t, err, projection.ErrNumerical)

	huge := mustRows(t, [][]float64{{1e200, 1e200}})
	_, err = projection.VectorTanimoto(huge, huge, nil, nil)
	require.ErrorIs(t, err, projection.ErrNumerical)
}

func TestMaskedDivide(t *testing.T) {
	t.Parallel()
	num := mustRows(t, [][]float64{{1, 2}, {3, 0}})
	den := mustRows(t, [][]float64{{2, 0}, {1e-300, 0}})
	got, err := projection.MaskedDivide(num, den)
	require.NoError(t, err)
	require.Equal(t, 0.5, mustAt(t, got, 0, 0))
	require.Zero(t, mustAt(t, got, 0, 1), "zero denominator masks to 0")
	require.InEpsilon(t, 3e300, mustAt(t, got, 1, 0), 1e-12, "tiny denominators divide normally")
	require.Zero(t, mustAt(t, got, 1, 1))

	_, err = projection.MaskedDivide(num, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, projection.ErrDimensionMismatch)
}

func TestInnerProductFromTanimoto(t *testing.T) {
	t.Parallel()
	tm := mustRows(t, [][]float64{{1, 1.0 / 3}, {0, 0.5}})
	got, err := projection.InnerProductFromTanimoto(tm)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{1, 0.5}, {0, 2.0 / 3}}), got, 1e-15)

	for _, v := range []float64{0, 0.2, 1.0 / 3, 0.9, 1} {
		ip := projection.InnerProductFromTanimotoValue(v)
		require.InDelta(t, v, projection.TanimotoFromInnerProductValue(ip), 1e-15)
	}

	inf := projection.InnerProductFromTanimotoValue(-1)
	require.True(t, math.IsInf(inf, 0))
}

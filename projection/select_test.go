// SPDX-License-Identifier: MIT
package projection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scissors/matrix"
	"github.com/katalvlaran/scissors/projection"
)

func TestSelect_Modes(t *testing.T) {
	t.Parallel()
	values := []float64{-3, 1, 0, 2}
	eye, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	tests := []struct {
		name    string
		mode    projection.Mode
		tol     float64
		want    []float64
		wantCol []int // source column of each retained eigenvector
	}{
		{"positive", projection.ModePositive, 0, []float64{2, 1}, []int{3, 1}},
		{"imaginary", projection.ModeImaginary, 0, []float64{-3, 2, 1}, []int{0, 3, 1}},
		{"positive tol", projection.ModePositive, 1.5, []float64{2}, []int{3}},
		{"imaginary tol", projection.ModeImaginary, 5, []float64{}, []int{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			kept, vecs, err := tc.mode.Select(values, eye, tc.tol)
			require.NoError(t, err)
			require.Equal(t, tc.want, kept)
			require.Equal(t, 4, vecs.Rows())
			require.Equal(t, len(tc.wantCol), vecs.Cols())
			for k, src := range tc.wantCol {
				require.Equal(t, 1.0, mustAt(t, vecs, src, k))
			}
		})
	}
}

func TestSelect_StableTies(t *testing.T) {
	t.Parallel()
	eye, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	_, vecs, err := projection.ModeImaginary.Select([]float64{-2, 2, 1}, eye, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, mustAt(t, vecs, 0, 0), "first of equal magnitudes stays first")
	require.Equal(t, 1.0, mustAt(t, vecs, 1, 1))
}

func TestSelect_Errors(t *testing.T) {
	t.Parallel()
	eye, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	_, _, err = projection.ModePositive.Select([]float64{1}, eye, 0)
	require.ErrorIs(t, err, projection.ErrDimensionMismatch)

	_, _, err = projection.Mode(7).Select([]float64{1, 2}, eye, 0)
	require.ErrorIs(t, err, projection.ErrInvalidMode)
}

func TestParseMode(t *testing.T) {
	t.Parallel()
	for _, m := range []projection.Mode{projection.ModePositive, projection.ModeImaginary} {
		got, err := projection.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	got, err := projection.ParseMode("")
	require.NoError(t, err)
	require.Equal(t, projection.DefaultMode, got)

	_, err = projection.ParseMode("complex")
	require.ErrorIs(t, err, projection.ErrInvalidMode)
	require.Equal(t, "Mode(9)", projection.Mode(9).String())
}

func TestDefaultTolerance(t *testing.T) {
	t.Parallel()
	eps := math.Nextafter(1, 2) - 1
	require.Equal(t, 4*4*eps, projection.DefaultTolerance([]float64{1, -4, 0, 2}))
	require.Zero(t, projection.DefaultTolerance(nil))
}

func TestScaleEigenpairs(t *testing.T) {
	t.Parallel()
	v := mustRows(t, [][]float64{{1, 0}, {0, 1}})

	p, err := projection.ScaleEigenpairs([]float64{4, -9}, v)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{0.5, 0}, {0, 1.0 / 3}}), p.Forward, 1e-15)
	requireClose(t, mustRows(t, [][]float64{{2, 0}, {0, 3}}), p.Inverse, 1e-15)

	_, err = projection.ScaleEigenpairs([]float64{4, 0}, v)
	require.ErrorIs(t, err, projection.ErrSingularBasis)

	_, err = projection.ScaleEigenpairs([]float64{4}, v)
	require.ErrorIs(t, err, projection.ErrDimensionMismatch)
}

func TestBuildProjection_ZeroToleranceKeepsTinyEigenvalues(t *testing.T) {
	t.Parallel()
	k := mustRows(t, [][]float64{{1, 0}, {0, 1e-300}})

	p, err := projection.BuildProjection(k, projection.ModePositive)
	require.NoError(t, err)
	require.Equal(t, 1, p.Dim())

	p, err = projection.BuildProjection(k, projection.ModePositive, projection.WithEigenTolerance(0))
	require.NoError(t, err)
	require.Equal(t, 2, p.Dim())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { projection.WithEigenTolerance(-1) })
	require.Panics(t, func() { projection.WithEigenTolerance(math.NaN()) })
	require.Panics(t, func() { projection.WithDecomposer(nil) })
	require.Panics(t, func() { projection.WithMode(projection.Mode(3)) })

	o := projection.NewOptions()
	require.Equal(t, projection.DefaultMode, o.Mode())
	require.False(t, o.Center())
	_, set := o.Tolerance()
	require.False(t, set)
	require.IsType(t, projection.GonumDecomposer{}, o.Decomposer())

	o = projection.NewOptions(projection.WithImaginary(), projection.WithCenter(), projection.WithEigenTolerance(0.5))
	require.Equal(t, projection.ModeImaginary, o.Mode())
	require.True(t, o.Center())
	tol, set := o.Tolerance()
	require.True(t, set)
	require.Equal(t, 0.5, tol)
}

func TestDecomposerByName(t *testing.T) {
	t.Parallel()
	d, ok := projection.DecomposerByName("jacobi")
	require.True(t, ok)
	require.IsType(t, projection.JacobiDecomposer{}, d)
	d, ok = projection.DecomposerByName("")
	require.True(t, ok)
	require.IsType(t, projection.GonumDecomposer{}, d)
	_, ok = projection.DecomposerByName("arpack")
	require.False(t, ok)
}

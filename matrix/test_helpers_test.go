// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions for kernels.
//   - Keep all data finite and well-formed unless a test opts into NaN/Inf.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/scissors/matrix"
)

// Shared tolerances.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
	AtolEig  = 1e-8
)

// hide wraps any Matrix to hide its concrete type from type assertions.
//
// Behavior highlights:
//   - Prevents the *Dense fast-path in code under test, so assertions can
//     compare fast-path and fallback results.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromSlice(r, c, vals)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// RandFilledDense returns an r×c *Dense with uniform values in [-1, 1).
// Deterministic for a fixed seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.NewFromSlice(r, c, vals)
	if err != nil {
		t.Fatalf("NewFromSlice: %v", err)
	}

	return m
}

// RandSymmetric returns X·Xᵀ for a random n×k X, a symmetric PSD matrix of
// rank min(n,k).
func RandSymmetric(t testing.TB, n, k int, seed int64) matrix.Matrix {
	t.Helper()
	x := RandFilledDense(t, n, k, seed)
	xt, err := matrix.Transpose(x)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	g, err := matrix.Mul(x, xt)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return g
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want element-wise (==).
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose asserts AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\na=\n%v\nb=\n%v", rtol, atol, a, b)
	}
}

// sliceClose asserts |a[i]-b[i]| ≤ atol + rtol*|b[i]| element-wise.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("slice lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("index %d: got %v; want %v", i, a[i], b[i])
		}
	}
}

// MustDims asserts the shape of m.
func MustDims(t *testing.T, m matrix.Matrix, r, c int) {
	t.Helper()
	if m.Rows() != r || m.Cols() != c {
		t.Fatalf("shape = %dx%d; want %dx%d", m.Rows(), m.Cols(), r, c)
	}
}

// Column copies column j of m.
func Column(t *testing.T, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = MustAt(t, m, i, j)
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, private element-wise and broadcast kernels (ew*) shared by
//     kernel centering, spectral scaling and the similarity estimators.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Inputs are materialized once via asDense; outputs are fresh *Dense values
//     with the numeric guard off, so NaN/Inf are carried rather than rejected.
//     Callers scan results explicitly (ValidateFinite) where it matters.
//
// AI-Hints:
//   - Keep broadcast vectors (means, scale factors) precomputed and reused.

package matrix

import (
	"fmt"
	"math"
)

// ewUnary copies X through f(v) in a flat loop.
func ewUnary(tag string, X Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := newDenseWithPolicy(d.r, d.c, false)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx, v := range d.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// ewBinary combines same-shape a and b through f(av, bv) in a flat loop.
func ewBinary(tag string, a, b Matrix, f func(av, bv float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := newDenseWithPolicy(da.r, da.c, false)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx := range out.data {
		out.data[idx] = f(da.data[idx], db.data[idx])
	}

	return out, nil
}

// ewBroadcast computes out[i,j] = f(X[i,j], rowVec[i], colVec[j]).
// A nil rowVec (colVec) stands for zeros; otherwise its length must match.
// Time: O(r*c). Space: O(r*c).
func ewBroadcast(tag string, X Matrix, rowVec, colVec []float64, f func(v, rv, cv float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := X.Rows(), X.Cols()
	if rowVec != nil && len(rowVec) != r {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	if colVec != nil && len(colVec) != c {
		return nil, matrixErrorf(tag, ErrDimensionMismatch)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var (
		i, j, base int
		rv, cv     float64
	)
	for i = 0; i < r; i++ {
		base = i * c
		rv = 0
		if rowVec != nil {
			rv = rowVec[i]
		}
		for j = 0; j < c; j++ {
			cv = 0
			if colVec != nil {
				cv = colVec[j]
			}
			out.data[base+j] = f(d.data[base+j], rv, cv)
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcast("ScaleCols", X, nil, scale, func(v, _, s float64) float64 { return v * s })
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
func ewScaleRows(X Matrix, scale []float64) (*Dense, error) {
	return ewBroadcast("ScaleRows", X, scale, nil, func(v, s, _ float64) float64 { return v * s })
}

// ewRowSquaredNorms returns Σ_j X[i,j]² for every row i.
// Time: O(r*c). Space: O(r).
func ewRowSquaredNorms(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("RowSquaredNorms", err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("RowSquaredNorms", err)
	}
	out := make([]float64, d.r)
	var acc float64
	for i := 0; i < d.r; i++ {
		acc = ZeroSum
		for _, v := range d.RawRowView(i) {
			acc += v * v
		}
		out[i] = acc
	}

	return out, nil
}

// ewDivideMasked computes num/den element-wise, writing 0 wherever den is
// exactly zero. Non-zero denominators follow IEEE division.
func ewDivideMasked(num, den Matrix) (*Dense, error) {
	return ewBinary("DivideMasked", num, den, func(n, d float64) float64 {
		if d == 0 {
			return 0
		}
		return n / d
	})
}

// ewFirstNonFinite reports the row-major coordinates of the first NaN/±Inf.
// Read errors from a foreign Matrix are treated as "not found" at that cell.
func ewFirstNonFinite(X Matrix) (i, j int, ok bool) {
	r, c := X.Rows(), X.Cols()
	if d, isDense := X.(*Dense); isDense {
		for idx, v := range d.data {
			if isNonFinite(v) {
				return idx / c, idx % c, true
			}
		}
		return 0, 0, false
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err == nil && isNonFinite(v) {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// ewReplaceInfNaN copies X replacing any {±Inf, NaN} by val (finite).
func ewReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	if isNonFinite(val) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}

	return ewUnary("ReplaceInfNaN", X, func(v float64) float64 {
		if isNonFinite(v) {
			return val
		}
		return v
	})
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close, not even to NaN.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for idx, av := range da.data {
		bv := db.data[idx]
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// ewMaxAbs returns max |X[i,j]| (0 for an empty matrix).
func ewMaxAbs(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf("MaxAbs", err)
	}
	d, err := asDense(X)
	if err != nil {
		return 0, matrixErrorf("MaxAbs", fmt.Errorf("materialize: %w", err))
	}
	var m float64
	for _, v := range d.data {
		if av := math.Abs(v); av > m {
			m = av
		}
	}

	return m, nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms used on kernel (Gram) matrices:
//     column/row means and double-centering in feature space.
//   - Keep tight loops centralized in ew* micro-kernels.
//
// Exposed API (via api.go):
//   - ColumnMeans(X)     -> means (len = cols)
//   - RowMeans(X)        -> means (len = rows)
//   - CenterKernel(K)    -> K - JK - KJ + JKJ, J = (1/n)·1·1ᵀ (literal products)
//   - RowSquaredNorms(X) -> Σ_j X[i,j]²
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-size matrices yield zero-length means and empty copies.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans  = "ColumnMeans"
	opRowMeans     = "RowMeans"
	opCenterKernel = "CenterKernel"
)

// columnMeans returns Σ_i X[i,j] / r for every column j.
// Zero rows give a zero vector of length c.
// Complexity: O(r*c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, d.c)
	if d.r == 0 {
		return means, nil
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(d.r)
	for j = range means {
		means[j] *= invR
	}

	return means, nil
}

// rowMeans returns Σ_j X[i,j] / c for every row i.
// Zero columns give a zero vector of length r.
// Complexity: O(r*c).
func rowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	means := make([]float64, d.r)
	if d.c == 0 {
		return means, nil
	}
	invC := 1.0 / float64(d.c)
	var acc float64
	for i := 0; i < d.r; i++ {
		acc = ZeroSum
		for _, v := range d.RawRowView(i) {
			acc += v
		}
		means[i] = acc * invC
	}

	return means, nil
}

// centerKernel double-centers a square kernel matrix.
//
// Implementation:
//   - Stage 1: Validate K square (non-symmetric input is accepted; the
//     transform is defined for any square matrix).
//   - Stage 2: Build J = (1/n)·1·1ᵀ and form JK, KJ and JKJ with Mul.
//   - Stage 3: K' = ((K − JK) − KJ) + JKJ, in exactly that order.
//
// Behavior highlights:
//   - The bilinear form is evaluated literally. It equals the mean-subtraction
//     form K[i,j] − colMean[j] − rowMean[i] + grand, but rounds differently.
//   - 0×0 input yields a 0×0 result. The input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func centerKernel(K Matrix) (*Dense, error) {
	if err := ValidateSquare(K); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	n := K.Rows()
	if n == 0 {
		return NewDense(0, 0)
	}
	J, err := NewFilled(n, n, 1/float64(n))
	if err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}

	var JK, KJ, JKJ, out Matrix
	if JK, err = Mul(J, K); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	if KJ, err = Mul(K, J); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	if JKJ, err = Mul(JK, J); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	if out, err = Sub(K, JK); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	if out, err = Sub(out, KJ); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	if out, err = Add(out, JKJ); err != nil {
		return nil, matrixErrorf(opCenterKernel, err)
	}
	res := out.(*Dense)
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

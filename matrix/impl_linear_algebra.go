// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and the symmetric Jacobi eigensolver. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with identical loop order, so both paths agree bitwise.
//   - Results are always freshly allocated *Dense values; operands are never mutated.
//   - IEEE semantics are preserved: NaN/Inf in operands propagate into results
//     (no zero-skipping shortcuts), so downstream finite scans see them.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opEigen     = "Eigen"
	opMatVec    = "MatVec"
	opDiag      = "NewDiag"
	opIdentity  = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy
// read through At. Kernels that need random access call this once up front.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}
	out.validateNaNInf = DefaultValidateNaNInf

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseWithPolicy(rows, cols, false)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: single flat loop 0..n-1.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}
			return res, nil
		}
	}

	// Fallback: fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b (same shape). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b (same shape). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result Dense(aRows, bCols).
//   - Stage 2: Fast-path for *Dense operands uses i→k→j row-major accumulation;
//     fallback uses i→j→k via At.
//
// Behavior highlights:
//   - Zero-area operands are legal: a (r×0)·(0×c) yields an r×c zero matrix.
//   - Every product term is accumulated, so NaN/Inf propagate exactly as in IEEE arithmetic.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep A as *Dense and cache-friendly by rows to unlock the best path here.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseWithPolicy(aRows, bCols, false)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			res.validateNaNInf = DefaultValidateNaNInf
			return res, nil
		}
	}

	// Fallback: accumulate in the same k order as the fast path.
	for i = 0; i < aRows; i++ {
		for k = 0; k < aCols; k++ {
			if av, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			for j = 0; j < bCols; j++ {
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				res.data[i*bCols+j] += av * bv
			}
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseWithPolicy(cols, rows, false)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		res.validateNaNInf = dm.validateNaNInf
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := d.copyDense()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var acc float64
	for i := 0; i < d.r; i++ {
		acc = ZeroSum
		base := i * d.c
		for j := 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}

	return NewDiag(onesVec(n))
}

// NewDiag returns the square matrix with diag on its main diagonal.
// Errors: ErrNaNInf (wrapped) for a non-finite diagonal entry.
func NewDiag(diag []float64) (*Dense, error) {
	n := len(diag)
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i, v := range diag {
		if err = res.Set(i, i, v); err != nil {
			return nil, matrixErrorf(opDiag, err)
		}
	}

	return res, nil
}

// NewFilled returns an r×c matrix with every entry equal to v.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if isNonFinite(v) {
		return nil, ErrNaNInf
	}
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range res.data {
		res.data[idx] = v
	}

	return res, nil
}

func onesVec(n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within eps.
//   - Stage 2: Sweep the strict upper triangle in fixed p→q order, annihilating
//     every A[p,q] above the convergence threshold with one rotation, and
//     accumulate rotations into Q.
//   - Stage 3: Stop when a full sweep finds nothing above the threshold, or
//     fail after the sweep budget.
//
// Behavior highlights:
//   - The threshold is eps scaled by max(1, max|A[i,j]|), so kernels with large
//     entries converge as reliably as unit-scale ones.
//   - Eigenvalues come back in diagonal order (NOT sorted); callers that need
//     an ordering sort the (value, column) pairs themselves.
//
// Inputs:
//   - m: symmetric Matrix (within eps).
//   - opts: WithEpsilon (tolerance), WithMaxSweeps (sweep budget).
//
// Returns:
//   - []float64: eigenvalues.
//   - *Dense: Q whose columns are orthonormal eigenvectors (Q[:,k] ↔ value k).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (wrapped), ErrEigenFailed.
//
// Complexity:
//   - Time O(sweeps * n^3), Space O(n^2).
//
// AI-Hints:
//   - Suited to small and medium bases; large bases are better served by a
//     LAPACK-backed solver.
func Eigen(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.copyDense()
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Convergence threshold relative to the largest entry.
	scale, err := ewMaxAbs(a)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	thresh := o.eps * math.Max(1, scale)

	var (
		sweep, p, q2, i int
		rotated         bool
		app, aqq, apq   float64
		aip, aiq        float64
		theta, t, c, s  float64
	)
	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n; p++ {
			for q2 = p + 1; q2 < n; q2++ {
				apq = a.data[p*n+q2]
				if math.Abs(apq) <= thresh {
					continue
				}
				rotated = true
				app = a.data[p*n+p]
				aqq = a.data[q2*n+q2]

				// θ = (aqq−app)/(2*apq); t = sign(θ) / (|θ|+√(θ²+1))
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == q2 {
						continue
					}
					aip = a.data[i*n+p]
					aiq = a.data[i*n+q2]
					a.data[i*n+p], a.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
					a.data[i*n+q2], a.data[q2*n+i] = s*aip+c*aiq, s*aip+c*aiq
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a.data[q2*n+q2] = s*s*app + 2*c*s*apq + c*c*aqq
				a.data[p*n+q2], a.data[q2*n+p] = 0, 0

				// Accumulate the rotation into Q (columns p and q).
				for i = 0; i < n; i++ {
					aip = q.data[i*n+p]
					aiq = q.data[i*n+q2]
					q.data[i*n+p] = c*aip - s*aiq
					q.data[i*n+q2] = s*aip + c*aiq
				}
			}
		}
		if !rotated {
			break
		}
	}
	if sweep == o.maxSweeps {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, documented entry points over the private ew*/stat kernels.
//   - Each facade delegates to exactly one canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// ToDense returns m as *Dense: m itself when it already is one, otherwise a copy.
// Callers that must not alias m should Clone first.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return asDense(m)
}

// ScaleRows returns out[i,j] = m[i,j] * scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows).
// Complexity: O(r*c).
func ScaleRows(m Matrix, scale []float64) (*Dense, error) { return ewScaleRows(m, scale) }

// ScaleCols returns out[i,j] = m[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols).
// Complexity: O(r*c).
func ScaleCols(m Matrix, scale []float64) (*Dense, error) { return ewScaleCols(m, scale) }

// DivideMasked returns num ⊘ den with 0 wherever den[i,j] == 0 exactly.
// Entries with a non-zero denominator follow IEEE division, so NaN/Inf in
// the operands propagate. Shapes must match.
//
// AI-Hints:
//   - The mask is an exact comparison; near-zero denominators are divided.
func DivideMasked(num, den Matrix) (*Dense, error) { return ewDivideMasked(num, den) }

// Map returns a copy of m with f applied to every element (row-major order).
// The result does not enforce the finite-value policy.
func Map(m Matrix, f func(v float64) float64) (*Dense, error) { return ewUnary("Map", m, f) }

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} is replaced by val.
// Policy: val must be finite; otherwise ErrNaNInf is returned.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) { return ewReplaceInfNaN(m, val) }

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// MaxAbs returns max |m[i,j]|, or 0 for a zero-area matrix.
func MaxAbs(m Matrix) (float64, error) { return ewMaxAbs(m) }

// FirstNonFinite reports the row-major coordinates of the first NaN/±Inf in m.
// ok is false when every entry is finite (or m is nil).
func FirstNonFinite(m Matrix) (i, j int, ok bool) {
	if ValidateNotNil(m) != nil {
		return 0, 0, false
	}

	return ewFirstNonFinite(m)
}

// ColumnMeans returns the per-column means of X (len = Cols).
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// RowMeans returns the per-row means of X (len = Rows).
func RowMeans(X Matrix) ([]float64, error) { return rowMeans(X) }

// RowSquaredNorms returns ‖X[i,:]‖² for every row i.
// A row of zeros yields 0; an m×0 matrix yields m zeros.
func RowSquaredNorms(X Matrix) ([]float64, error) { return ewRowSquaredNorms(X) }

// CenterKernel double-centers a square kernel matrix in feature space:
//
//	K' = K − JK − KJ + JKJ, with J[i,j] = 1/n.
//
// The result has zero row and column sums (up to rounding).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) (three products).
func CenterKernel(K Matrix) (*Dense, error) { return centerKernel(K) }

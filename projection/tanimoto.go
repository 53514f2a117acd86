// SPDX-License-Identifier: MIT

package projection

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/scissors/matrix"
)

const (
	opVectorTanimoto = "VectorTanimoto"
	opInnerProduct   = "InnerProductFromTanimoto"
)

// VectorTanimoto estimates Tanimoto coefficients between two vector sets.
//
// MAIN DESCRIPTION:
//   - T[i,j] = AB[i,j] / (aO[i] + bO[j] − AB[i,j]), AB = a·bᵀ, with the
//     masked-divide policy for a zero denominator (see MaskedDivide).
//
// Implementation:
//   - Stage 1: nil overlaps default to squared row norms of a (resp. b).
//   - Stage 2: Validate a.Cols == b.Cols, len(aOverlap) == a.Rows,
//     len(bOverlap) == b.Rows.
//   - Stage 3: AB = a·bᵀ; broadcast overlaps to p×q.
//   - Stage 4: Any NaN/Inf in AB or the overlaps fails with ErrNumerical.
//   - Stage 5: MaskedDivide(AB, aO ⊕ bO − AB).
//
// Behavior highlights:
//   - Zero-width vectors (d == 0) with default overlaps give an all-zero
//     matrix: every denominator is exactly zero.
//   - Swapping arguments transposes the result exactly.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch, ErrNumerical.
//
// Complexity:
//   - Time O(p·q·d), Space O(p·q).
func VectorTanimoto(a, b matrix.Matrix, aOverlap, bOverlap []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}
	da, err := matrix.ToDense(a)
	if err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}
	db, err := matrix.ToDense(b)
	if err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}

	if aOverlap == nil {
		aOverlap = squaredNorms(da)
	}
	if bOverlap == nil {
		bOverlap = squaredNorms(db)
	}
	p, q := da.Rows(), db.Rows()
	if da.Cols() != db.Cols() || len(aOverlap) != p || len(bOverlap) != q {
		return nil, projectionErrorf(opVectorTanimoto, ErrDimensionMismatch)
	}

	// AB and the broadcast denominator are filled together, row by row.
	ab, err := matrix.NewZeros(p, q)
	if err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}
	den, err := matrix.NewZeros(p, q)
	if err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}
	for _, v := range aOverlap {
		if isNonFinite(v) {
			return nil, projectionErrorf(opVectorTanimoto, ErrNumerical)
		}
	}
	for _, v := range bOverlap {
		if isNonFinite(v) {
			return nil, projectionErrorf(opVectorTanimoto, ErrNumerical)
		}
	}

	var (
		i, j   int
		dot    float64
		aRow   []float64
		setErr error
	)
	for i = 0; i < p; i++ {
		aRow = da.RawRowView(i)
		for j = 0; j < q; j++ {
			dot = floats.Dot(aRow, db.RawRowView(j))
			if isNonFinite(dot) {
				return nil, projectionErrorf(opVectorTanimoto, errAt(i, j, ErrNumerical))
			}
			if setErr = ab.Set(i, j, dot); setErr == nil {
				setErr = den.Set(i, j, aOverlap[i]+bOverlap[j]-dot)
			}
			if setErr != nil {
				// Finite operands can still overflow the denominator.
				return nil, projectionErrorf(opVectorTanimoto, errAt(i, j, ErrNumerical))
			}
		}
	}

	t, err := MaskedDivide(ab, den)
	if err != nil {
		return nil, projectionErrorf(opVectorTanimoto, err)
	}

	return t, nil
}

// MaskedDivide divides element-wise and writes 0 wherever the denominator is
// exactly zero, e.g. for the Tanimoto of two zero vectors. Near-zero
// denominators are divided normally.
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch.
func MaskedDivide(num, den matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(num); err != nil {
		return nil, projectionErrorf("MaskedDivide", err)
	}
	if err := matrix.ValidateNotNil(den); err != nil {
		return nil, projectionErrorf("MaskedDivide", err)
	}
	if num.Rows() != den.Rows() || num.Cols() != den.Cols() {
		return nil, projectionErrorf("MaskedDivide", ErrDimensionMismatch)
	}
	out, err := matrix.DivideMasked(num, den)
	if err != nil {
		return nil, projectionErrorf("MaskedDivide", err)
	}

	return out, nil
}

// InnerProductFromTanimoto converts Tanimoto coefficients into inner
// products under the assumption that every object has unit self-overlap:
// IP = 2T / (1 + T).
//
// T = −1 maps to ±Inf/NaN; the result does not enforce the finite policy.
func InnerProductFromTanimoto(T matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.Map(T, InnerProductFromTanimotoValue)
	if err != nil {
		return nil, projectionErrorf(opInnerProduct, err)
	}

	return out, nil
}

// InnerProductFromTanimotoValue is the scalar form of InnerProductFromTanimoto.
func InnerProductFromTanimotoValue(t float64) float64 {
	return (2 * t) / (1 + t)
}

// TanimotoFromInnerProductValue inverts InnerProductFromTanimotoValue for unit
// self-overlaps: T = IP / (2 − IP).
func TanimotoFromInnerProductValue(ip float64) float64 {
	return ip / (2 - ip)
}

// squaredNorms returns Σ_k x[i,k]² per row.
func squaredNorms(x *matrix.Dense) []float64 {
	out := make([]float64, x.Rows())
	for i := range out {
		row := x.RawRowView(i)
		out[i] = floats.Dot(row, row)
	}

	return out
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

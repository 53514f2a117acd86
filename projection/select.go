// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scissors/matrix"
)

// Mode selects which eigenpairs a projection retains and in what order.
//
//   - ModePositive: rank by λ descending, keep λ > tol.
//     Embedding inner products reproduce the positive part of the kernel.
//
//   - ModeImaginary: rank by |λ| descending, keep |λ| > tol.
//     Negative eigenvalues contribute "imaginary" dimensions, scaled by √|λ|.
type Mode int

const (
	// ModePositive retains positive eigenvalues only (the default).
	ModePositive Mode = iota

	// ModeImaginary retains every non-negligible eigenvalue, ranked by magnitude.
	ModeImaginary
)

const (
	modePositiveName  = "positive"
	modeImaginaryName = "imaginary"
)

func (m Mode) valid() bool { return m == ModePositive || m == ModeImaginary }

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModePositive:
		return modePositiveName
	case ModeImaginary:
		return modeImaginaryName
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of String. Errors: ErrInvalidMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case modePositiveName, "":
		return ModePositive, nil
	case modeImaginaryName:
		return ModeImaginary, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrInvalidMode)
	}
}

// key is the ranking key of an eigenvalue under m.
func (m Mode) key(v float64) float64 {
	if m == ModeImaginary {
		return math.Abs(v)
	}

	return v
}

// Select ranks and filters an eigendecomposition.
//
// Implementation:
//   - Stage 1: Validate len(values) == vectors.Cols().
//   - Stage 2: Stable-sort column indices by the mode key, descending; ties
//     keep the solver's order.
//   - Stage 3: Keep the leading run whose key exceeds tol and gather those
//     columns of vectors.
//
// Returns:
//   - []float64: retained eigenvalues (signed), len d.
//   - *matrix.Dense: n×d retained eigenvectors.
//
// Errors:
//   - ErrInvalidMode, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n log n + n·d), Space O(n·d).
func (m Mode) Select(values []float64, vectors *matrix.Dense, tol float64) ([]float64, *matrix.Dense, error) {
	if !m.valid() {
		return nil, nil, projectionErrorf("Select", ErrInvalidMode)
	}
	if vectors == nil || len(values) != vectors.Cols() {
		return nil, nil, projectionErrorf("Select", ErrDimensionMismatch)
	}

	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.key(values[order[a]]) > m.key(values[order[b]])
	})

	d := 0
	for d < len(order) && m.key(values[order[d]]) > tol {
		d++
	}
	order = order[:d]

	kept := make([]float64, d)
	for k, idx := range order {
		kept[k] = values[idx]
	}
	rows := make([]int, vectors.Rows())
	for i := range rows {
		rows[i] = i
	}
	vecs, err := vectors.Induced(rows, order)
	if err != nil {
		return nil, nil, projectionErrorf("Select", err)
	}

	return kept, vecs, nil
}

// DefaultTolerance returns max|λ|·n·ε, the numerical-rank threshold below
// which an eigenvalue of an n×n matrix is indistinguishable from zero.
func DefaultTolerance(values []float64) float64 {
	var maxAbs float64
	for _, v := range values {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs * float64(len(values)) * machineEpsilon
}

// machineEpsilon is the float64 unit roundoff gap at 1 (2⁻⁵²).
var machineEpsilon = math.Nextafter(1, 2) - 1

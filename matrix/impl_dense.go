// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Allow zero-area shapes (0×n, m×0): a projection with no retained
//     dimensions still has to produce well-formed, empty results.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxApply  = "Apply"   // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
	ctxRow    = "Row"     // method tag for Dense.Row
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - Zero-area shapes are legal and allocate an empty buffer.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically; len may be 0.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy constructs Dense and sets validateNaNInf explicitly.
// Intended for package internals (ingestion constructors) and tests.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// NewFromSlice builds an r×c Dense from a row-major buffer (copied).
//
// Implementation:
//   - Stage 1: resolve options; validate len(data) == rows*cols.
//   - Stage 2: copy the buffer, rejecting NaN/Inf when the policy is on.
//
// Errors:
//   - ErrInvalidDimensions (negative shape or wrong buffer length).
//   - ErrNaNInf (non-finite entry under validation), wrapped with coordinates.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromSlice(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, ErrInvalidDimensions
	}
	m, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewFromRows builds a Dense from a [][]float64 literal (copied).
// An empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrRaggedRows when rows differ in length.
//   - ErrNaNInf under the default numeric policy.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return NewFromSlice(0, 0, nil, opts...)
	}
	c := len(rows[0])
	flat := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), c, ErrRaggedRows)
		}
		flat = append(flat, row...)
	}

	return NewFromSlice(r, c, flat, opts...)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.copyDense()
}

// copyDense is Clone without the interface boxing.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange for an invalid row index.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRowView returns row i as a slice aliasing the backing buffer.
// Mutations through the slice bypass the numeric policy; callers that only
// read (dot products, norms) use it to avoid copies.
// Panics on an invalid index, as slicing does.
func (m *Dense) RawRowView(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// RawData returns a copy of the row-major buffer.
func (m *Dense) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Result[i,j] = m[rowsIdx[i], colsIdx[j]]; index sets may repeat or reorder.
//
// Behavior highlights:
//   - Empty index sets produce a legal zero-area Dense with the base policy.
//   - Numeric policy is inherited from the base.
//
// Errors:
//   - ErrOutOfRange for any invalid index (wrapped with the offending index).
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	res, err := newDenseWithPolicy(rp, cp, m.validateNaNInf)
	if err != nil {
		return nil, err
	}
	var i, j, base int
	for i = 0; i < rp; i++ {
		base = rowsIdx[i] * m.c
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[base+colsIdx[j]]
		}
	}

	return res, nil
}

// LeadingCols copies the first k columns (k is clamped to [0, Cols()]).
// Complexity: O(r*k).
func (m *Dense) LeadingCols(k int) *Dense {
	if k < 0 {
		k = 0
	}
	if k > m.c {
		k = m.c
	}
	res := &Dense{r: m.r, c: k, data: make([]float64, m.r*k), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.r; i++ {
		copy(res.data[i*k:(i+1)*k], m.data[i*m.c:i*m.c+k])
	}

	return res
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, honoring the numeric policy.
// On a policy violation the matrix is left partially updated.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

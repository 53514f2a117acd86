// SPDX-License-Identifier: MIT
// Package projection: sentinel error set.
//
// Every message is prefixed with "projection: ". Operations wrap sentinels
// with an operation tag (see projectionErrorf); callers match with errors.Is.
// Errors from package matrix are wrapped, never replaced, so matrix sentinels
// (e.g. matrix.ErrNilMatrix) remain matchable too.

package projection

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates a kernel matrix that is not square.
	ErrShape = errors.New("projection: kernel matrix is not square")

	// ErrDimensionMismatch indicates an inner-product row width that differs
	// from the basis size, or vector/overlap lengths that do not line up.
	ErrDimensionMismatch = errors.New("projection: dimension mismatch")

	// ErrSingularBasis indicates that a retained eigenpair has a zero
	// eigenvalue, which the selection step must have excluded.
	ErrSingularBasis = errors.New("projection: retained eigenvalue is zero")

	// ErrNumerical indicates NaN or ±Inf in intermediate similarity values.
	// It signals corrupted upstream input and is never masked.
	ErrNumerical = errors.New("projection: NaN or Inf in similarity computation")

	// ErrInvalidMaxDim indicates a negative maxDim other than AllDims.
	ErrInvalidMaxDim = errors.New("projection: maxDim must be non-negative or AllDims")

	// ErrNilKernel indicates a nil kernel matrix.
	ErrNilKernel = errors.New("projection: nil kernel matrix")

	// ErrInvalidMode indicates a Mode value outside the declared set.
	ErrInvalidMode = errors.New("projection: unknown selection mode")
)

// projectionErrorf wraps err with an operation tag, preserving it via %w.
func projectionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// errAt attaches row/column coordinates to err.
func errAt(i, j int, err error) error {
	return fmt.Errorf("(%d,%d): %w", i, j, err)
}

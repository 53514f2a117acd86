// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer under the spectral
// projection code: a row-major Dense type with safe accessors, validators,
// products and transposes, kernel double-centering, element-wise kernels, a
// cyclic Jacobi eigensolver and a bridge to gonum's LAPACK-backed EigenSym.
//
// Zero-area shapes (0×n, m×0) are first-class: a projection that retains no
// dimensions still produces well-formed empty results.
//
// All public functions return sentinel errors (see errors.go) wrapped with an
// operation tag; match them with errors.Is.
package matrix

// SPDX-License-Identifier: MIT

// Package projection builds SCISSORS embeddings: low-dimensional vectors
// whose inner products approximate a similarity kernel, computed from each
// object's similarity to a small fixed basis set.
//
// What it does:
//
//	basis×basis kernel K ──(optional centering)──► eigendecomposition
//	   ──► retained pairs (λ_k, v_k) ──► P = D·Vᵀ, D = diag(1/√|λ|)
//	library×basis rows ip ──► vectors = (P·ipᵀ)ᵀ ──► Tanimoto estimates
//
// Key features:
//   - two selection modes: ModePositive keeps λ > tol sorted descending,
//     ModeImaginary keeps |λ| > tol sorted by magnitude;
//   - an explicit numerical-rank tolerance (default max|λ|·n·ε, see
//     WithEigenTolerance);
//   - pluggable eigensolver (gonum LAPACK by default, or the Jacobi solver
//     of package matrix);
//   - lazy, build-once projection cache guarded for concurrent callers;
//   - zero-dimensional models (no retained eigenvalue) answer every call
//     with zero-width results instead of failing.
//
// Usage:
//
//	m, err := projection.New(kbb, projection.WithCenter())
//	vecs, err := m.Embed(klb, projection.AllDims)
//	sim, err := projection.VectorTanimoto(vecs, vecs, nil, nil)
//
// Performance:
//
//   - Build: O(n³) for the eigendecomposition of the n×n basis kernel.
//   - Embed: O(m·n·d); VectorTanimoto: O(p·q·d).
package projection

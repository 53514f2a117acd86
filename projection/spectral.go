// SPDX-License-Identifier: MIT

package projection

import (
	"math"

	"github.com/katalvlaran/scissors/matrix"
)

const (
	opBuild = "BuildProjection"
	opScale = "scaleEigenpairs"
)

// Projection holds the forward and inverse projection matrices derived from
// the retained eigenpairs of a basis kernel.
//
//   - Forward      P     = D·Vᵀ      (d×n), D = diag(1/√|λ|)
//   - Inverse      P_inv = V·D_inv   (n×d), D_inv = diag(√|λ|)
//   - Eigenvalues  retained λ in selection order (len d, signed)
//   - Eigenvectors V (n×d), orthonormal columns
//
// P·P_inv = I_d, and P_inv·P_invᵀ reproduces the kernel restricted to the
// retained subspace (for ModePositive).
type Projection struct {
	Forward      *matrix.Dense
	Inverse      *matrix.Dense
	Eigenvalues  []float64
	Eigenvectors *matrix.Dense
}

// Dim returns d, the number of retained dimensions.
func (p *Projection) Dim() int { return len(p.Eigenvalues) }

// BasisSize returns n, the width of inner-product rows the projection accepts.
func (p *Projection) BasisSize() int { return p.Forward.Cols() }

// BuildProjection computes the spectral projection of a kernel matrix.
//
// MAIN DESCRIPTION:
//   - Decomposes K, ranks and filters eigenpairs by mode, and scales the
//     retained eigenvectors into forward and inverse projection matrices.
//
// Implementation:
//   - Stage 1: Validate K (non-nil, square, finite).
//   - Stage 2: Full eigendecomposition via the configured Decomposer
//     (WithDecomposer; gonum by default).
//   - Stage 3: tol = WithEigenTolerance value, or DefaultTolerance(λ).
//     mode.Select keeps d pairs.
//   - Stage 4: P = diag(1/√|λ|)·Vᵀ, P_inv = V·diag(√|λ|).
//
// Behavior highlights:
//   - d == 0 is not an error: Forward is 0×n, Inverse n×0.
//   - Only WithEigenTolerance and WithDecomposer apply here; mode is explicit
//     and centering is the caller's business (see CenterKernel).
//
// Errors:
//   - ErrNilKernel, ErrShape, ErrNumerical (non-finite kernel entry).
//   - ErrInvalidMode, ErrSingularBasis.
//   - Wrapped solver errors (matrix.ErrEigenFailed).
//
// Complexity:
//   - Time O(n^3) (decomposition) + O(n·d), Space O(n^2).
func BuildProjection(K matrix.Matrix, mode Mode, opts ...Option) (*Projection, error) {
	if err := validateKernel(K); err != nil {
		return nil, projectionErrorf(opBuild, err)
	}
	o := gatherOptions(opts...)

	values, vectors, err := o.decomposer.Decompose(K)
	if err != nil {
		return nil, projectionErrorf(opBuild, err)
	}
	tol, ok := o.Tolerance()
	if !ok {
		tol = DefaultTolerance(values)
	}
	kept, vecs, err := mode.Select(values, vectors, tol)
	if err != nil {
		return nil, projectionErrorf(opBuild, err)
	}

	p, err := scaleEigenpairs(kept, vecs)
	if err != nil {
		return nil, projectionErrorf(opBuild, err)
	}

	return p, nil
}

// scaleEigenpairs turns retained (λ, V) into a Projection.
// A zero λ cannot be scaled and yields ErrSingularBasis.
func scaleEigenpairs(values []float64, vectors *matrix.Dense) (*Projection, error) {
	if vectors == nil || len(values) != vectors.Cols() {
		return nil, projectionErrorf(opScale, ErrDimensionMismatch)
	}
	d := len(values)
	dScale := make([]float64, d)
	dInv := make([]float64, d)
	var root float64
	for k, lam := range values {
		if lam == 0 {
			return nil, projectionErrorf(opScale, ErrSingularBasis)
		}
		root = math.Sqrt(math.Abs(lam))
		dScale[k] = 1 / root
		dInv[k] = root
	}

	vt, err := matrix.Transpose(vectors)
	if err != nil {
		return nil, projectionErrorf(opScale, err)
	}
	forward, err := matrix.ScaleRows(vt, dScale)
	if err != nil {
		return nil, projectionErrorf(opScale, err)
	}
	inverse, err := matrix.ScaleCols(vectors, dInv)
	if err != nil {
		return nil, projectionErrorf(opScale, err)
	}

	return &Projection{
		Forward:      forward,
		Inverse:      inverse,
		Eigenvalues:  append([]float64(nil), values...),
		Eigenvectors: vectors,
	}, nil
}

// validateKernel maps structural problems of a kernel onto package sentinels.
func validateKernel(K matrix.Matrix) error {
	if matrix.ValidateNotNil(K) != nil {
		return ErrNilKernel
	}
	if K.Rows() != K.Cols() {
		return ErrShape
	}
	if i, j, bad := matrix.FirstNonFinite(K); bad {
		return projectionErrorf("kernel", errAt(i, j, ErrNumerical))
	}

	return nil
}

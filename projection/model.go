// SPDX-License-Identifier: MIT

package projection

import (
	"sync"

	"github.com/katalvlaran/scissors/matrix"
)

const (
	opNew        = "New"
	opEmbed      = "Embed"
	opSimilarity = "Similarity"
)

// buildState tracks the lazy projection cache of a Model.
type buildState uint8

const (
	stateUninitialized buildState = iota // nothing computed yet
	stateBuilt                           // proj valid
	stateFailed                          // err holds the deterministic build error
)

// Model is a SCISSORS model over one basis kernel.
//
// The kernel is copied (and centered, with WithCenter) at construction. The
// projection is built on first need and cached; concurrent first callers
// block on one build and all observe the same result. A failed build is
// cached too, because retrying on the same kernel would fail the same way.
// Once built, a Model is safe for concurrent use.
type Model struct {
	kernel *matrix.Dense
	opts   Options

	mu    sync.Mutex
	state buildState
	proj  *Projection
	err   error
}

// New validates and copies the basis×basis kernel K.
//
// Implementation:
//   - Stage 1: Resolve options; validate K non-nil, square and finite.
//   - Stage 2: Copy K, double-centering it when WithCenter is set.
//
// Errors:
//   - ErrNilKernel, ErrShape, ErrNumerical.
//
// Complexity:
//   - Time O(n^2), or O(n^3) with centering.
func New(K matrix.Matrix, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	if err := validateKernel(K); err != nil {
		return nil, projectionErrorf(opNew, err)
	}

	var (
		kernel *matrix.Dense
		err    error
	)
	if o.center {
		kernel, err = CenterKernel(K)
	} else {
		kernel, err = matrix.ToDense(K.Clone())
	}
	if err != nil {
		return nil, projectionErrorf(opNew, err)
	}

	return &Model{kernel: kernel, opts: o}, nil
}

// build runs the state machine; it is the only writer of proj/err.
func (m *Model) build() (*Projection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case stateBuilt:
		return m.proj, nil
	case stateFailed:
		return nil, m.err
	}

	p, err := BuildProjection(m.kernel, m.opts.mode, WithDecomposer(m.opts.decomposer), m.tolOption())
	if err != nil {
		m.state, m.err = stateFailed, err
		return nil, err
	}
	m.state, m.proj = stateBuilt, p

	return p, nil
}

// tolOption forwards an explicit tolerance, or a no-op.
func (m *Model) tolOption() Option {
	if tol, ok := m.opts.Tolerance(); ok {
		return WithEigenTolerance(tol)
	}

	return func(*Options) {}
}

// BasisSize returns n, the number of basis objects.
func (m *Model) BasisSize() int { return m.kernel.Rows() }

// Mode returns the selection mode the model was built with.
func (m *Model) Mode() Mode { return m.opts.mode }

// Kernel returns a copy of the kernel the model decomposes (centered when
// WithCenter was given).
func (m *Model) Kernel() *matrix.Dense { return m.kernel.Clone().(*matrix.Dense) }

// Projection builds (once) and returns the cached projection.
// The returned value is shared; callers must not mutate it.
func (m *Model) Projection() (*Projection, error) { return m.build() }

// MaxDim returns d, the number of retained dimensions.
func (m *Model) MaxDim() (int, error) {
	p, err := m.build()
	if err != nil {
		return 0, err
	}

	return p.Dim(), nil
}

// Eigenvalues returns a copy of the retained eigenvalues in selection order.
func (m *Model) Eigenvalues() ([]float64, error) {
	p, err := m.build()
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), p.Eigenvalues...), nil
}

// Embed maps inner-product rows into the reduced space.
//
// MAIN DESCRIPTION:
//   - vectors = (P · ipᵀ)ᵀ, one row per object, columns ordered from the most
//     to the least significant retained dimension.
//
// Inputs:
//   - ip: m×n inner products of m objects against the n basis objects.
//   - maxDim: AllDims keeps every dimension; k ≥ 0 keeps the first min(k, d).
//
// Errors:
//   - ErrInvalidMaxDim (maxDim < 0 and != AllDims).
//   - matrix.ErrNilMatrix (nil ip), ErrDimensionMismatch (ip.Cols() != n).
//   - Any cached build error.
//
// Complexity:
//   - Time O(m·n·d), Space O(m·d).
func (m *Model) Embed(ip matrix.Matrix, maxDim int) (*matrix.Dense, error) {
	if maxDim < 0 && maxDim != AllDims {
		return nil, projectionErrorf(opEmbed, ErrInvalidMaxDim)
	}
	if err := matrix.ValidateNotNil(ip); err != nil {
		return nil, projectionErrorf(opEmbed, err)
	}
	if ip.Cols() != m.BasisSize() {
		return nil, projectionErrorf(opEmbed, ErrDimensionMismatch)
	}
	p, err := m.build()
	if err != nil {
		return nil, err
	}

	ipT, err := matrix.Transpose(ip)
	if err != nil {
		return nil, projectionErrorf(opEmbed, err)
	}
	pv, err := matrix.Mul(p.Forward, ipT)
	if err != nil {
		return nil, projectionErrorf(opEmbed, err)
	}
	vt, err := matrix.Transpose(pv)
	if err != nil {
		return nil, projectionErrorf(opEmbed, err)
	}
	vectors, err := matrix.ToDense(vt)
	if err != nil {
		return nil, projectionErrorf(opEmbed, err)
	}
	if maxDim == AllDims || maxDim >= vectors.Cols() {
		return vectors, nil
	}

	return vectors.LeadingCols(maxDim), nil
}

// Similarity embeds ip and returns the all-vs-all Tanimoto estimates of the
// embedded rows. selfOverlap (len m) supplies true self-similarities; nil
// falls back to squared vector norms.
//
// Errors: as Embed and VectorTanimoto.
func (m *Model) Similarity(ip matrix.Matrix, selfOverlap []float64, maxDim int) (*matrix.Dense, error) {
	vecs, err := m.Embed(ip, maxDim)
	if err != nil {
		return nil, projectionErrorf(opSimilarity, err)
	}
	sim, err := VectorTanimoto(vecs, vecs, selfOverlap, selfOverlap)
	if err != nil {
		return nil, projectionErrorf(opSimilarity, err)
	}

	return sim, nil
}

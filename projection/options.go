// SPDX-License-Identifier: MIT

// Package projection: functional configuration for model construction and
// projection building. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a setter list.
package projection

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMode keeps only positive eigenvalues.
	DefaultMode = ModePositive

	// DefaultCenter leaves the kernel uncentered.
	DefaultCenter = false

	// AllDims passed as maxDim keeps every retained dimension.
	AllDims = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "projection: WithEigenTolerance: tol must be finite, non-negative"
	panicDecomposerNil    = "projection: WithDecomposer: decomposer must be non-nil"
	panicModeInvalid      = "projection: WithMode: unknown mode"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	mode       Mode
	center     bool
	tol        float64 // used only when tolSet
	tolSet     bool
	decomposer Decomposer
}

// WithImaginary selects ModeImaginary: eigenpairs are ranked by |λ| and
// negative eigenvalues contribute "imaginary" dimensions.
func WithImaginary() Option {
	return func(o *Options) { o.mode = ModeImaginary }
}

// WithMode selects the eigenpair selection mode explicitly.
// Panics on a value outside the declared set.
func WithMode(m Mode) Option {
	if !m.valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithCenter double-centers the kernel in feature space before decomposition.
func WithCenter() Option {
	return func(o *Options) { o.center = true }
}

// WithEigenTolerance overrides the numerical-rank threshold used by the
// selection step. tol = 0 compares eigenvalues with zero exactly.
//
// Errors:
//   - Panics with a stable message when tol is negative or non-finite.
//
// AI-Hints:
//   - The default, max|λ|·n·ε, discards eigenvalues indistinguishable from
//     rounding noise; pass an explicit value only for reproducibility studies.
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tol = tol
		o.tolSet = true
	}
}

// WithDecomposer swaps the eigensolver (default GonumDecomposer).
func WithDecomposer(d Decomposer) Option {
	if d == nil {
		panic(panicDecomposerNil)
	}

	return func(o *Options) { o.decomposer = d }
}

// Mode reports the resolved selection mode.
func (o Options) Mode() Mode { return o.mode }

// Center reports whether the kernel is centered.
func (o Options) Center() bool { return o.center }

// Tolerance reports the explicit tolerance and whether one was set.
func (o Options) Tolerance() (float64, bool) { return o.tol, o.tolSet }

// Decomposer reports the resolved eigensolver.
func (o Options) Decomposer() Decomposer { return o.decomposer }

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(user ...Option) Options {
	o := Options{
		mode:       DefaultMode,
		center:     DefaultCenter,
		decomposer: GonumDecomposer{},
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// SPDX-License-Identifier: MIT

package projection

import (
	"github.com/katalvlaran/scissors/matrix"
)

// Decomposer computes the full eigendecomposition of a symmetric matrix.
// values[k] pairs with column k of vectors; no ordering is required, the
// selection step sorts.
type Decomposer interface {
	Decompose(k matrix.Matrix) (values []float64, vectors *matrix.Dense, err error)
}

// GonumDecomposer delegates to gonum's LAPACK-backed mat.EigenSym.
type GonumDecomposer struct{}

// Decompose implements Decomposer.
func (GonumDecomposer) Decompose(k matrix.Matrix) ([]float64, *matrix.Dense, error) {
	sym, err := mirrorLower(k)
	if err != nil {
		return nil, nil, err
	}

	return matrix.EigenSym(sym)
}

// JacobiDecomposer runs the cyclic Jacobi solver of package matrix.
// Zero fields fall back to the matrix package defaults.
type JacobiDecomposer struct {
	Epsilon   float64
	MaxSweeps int
}

// Decompose implements Decomposer.
func (j JacobiDecomposer) Decompose(k matrix.Matrix) ([]float64, *matrix.Dense, error) {
	sym, err := mirrorLower(k)
	if err != nil {
		return nil, nil, err
	}
	var opts []matrix.Option
	if j.Epsilon > 0 {
		opts = append(opts, matrix.WithEpsilon(j.Epsilon))
	}
	if j.MaxSweeps > 0 {
		opts = append(opts, matrix.WithMaxSweeps(j.MaxSweeps))
	}

	return matrix.Eigen(sym, opts...)
}

// DecomposerByName maps a solver name ("gonum", "jacobi") to a Decomposer.
// The empty name selects the default.
func DecomposerByName(name string) (Decomposer, bool) {
	switch name {
	case "", "gonum":
		return GonumDecomposer{}, true
	case "jacobi":
		return JacobiDecomposer{}, true
	default:
		return nil, false
	}
}

// mirrorLower returns a symmetric copy of k built from its lower triangle.
// The kernel is symmetric by contract only; reading one triangle matches
// what symmetric LAPACK drivers do with slightly asymmetric input.
func mirrorLower(k matrix.Matrix) (*matrix.Dense, error) {
	d, err := matrix.ToDense(k)
	if err != nil {
		return nil, err
	}
	n := d.Rows()
	out := d.Clone().(*matrix.Dense)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		row := d.RawRowView(i)
		for j = 0; j < i; j++ {
			v = row[j]
			if err = out.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

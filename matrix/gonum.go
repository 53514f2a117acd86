// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge Dense to gonum.org/v1/gonum/mat for LAPACK-grade kernels
//     (symmetric eigendecomposition) and gonum's binary matrix encoding.
//   - Keep zero-area shapes legal on our side: gonum cannot represent them,
//     so the bridge reports ErrInvalidDimensions instead of panicking.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opEigenSym  = "EigenSym"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions for zero-area input.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(d.r, d.c, d.RawData()), nil
}

// FromGonum copies any gonum matrix into a new Dense with the given options.
// A nil source is rejected; finite-value validation follows opts.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	data := make([]float64, r*c)
	if raw, ok := src.(*mat.Dense); ok {
		rm := raw.RawMatrix()
		for i := 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], rm.Data[i*rm.Stride:i*rm.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data[i*c+j] = src.At(i, j)
			}
		}
	}
	out, err := NewFromSlice(r, c, data, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return out, nil
}

// EigenSym computes the eigendecomposition of a symmetric matrix with gonum's
// mat.EigenSym.
//
// Implementation:
//   - Stage 1: ValidateSymmetric within eps (WithEpsilon).
//   - Stage 2: Pack the upper triangle into mat.SymDense and factorize.
//   - Stage 3: Copy values (ascending) and the eigenvector columns back.
//
// Behavior highlights:
//   - A 0×0 input yields empty values and a 0×0 vector matrix.
//   - Values are ascending; column k of the returned matrix pairs with value k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (wrapped), ErrEigenFailed.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	n := m.Rows()
	if n == 0 {
		empty, _ := NewDense(0, 0)
		return []float64{}, empty, nil
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	sym := mat.NewSymDense(n, d.RawData())
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigenSym, ErrEigenFailed)
	}
	values := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	vectors, err := FromGonum(&ev, WithNoValidateNaNInf())
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	return values, vectors, nil
}

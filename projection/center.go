// SPDX-License-Identifier: MIT

package projection

import (
	"github.com/katalvlaran/scissors/matrix"
)

// CenterKernel centers a kernel matrix in feature space,
//
//	K' = K − J·K − K·J + J·K·J,  J[i,j] = 1/n,
//
// evaluated literally in that bilinear form. K is not mutated.
// Errors: ErrNilKernel, ErrShape.
func CenterKernel(K matrix.Matrix) (*matrix.Dense, error) {
	if matrix.ValidateNotNil(K) != nil {
		return nil, projectionErrorf("CenterKernel", ErrNilKernel)
	}
	if K.Rows() != K.Cols() {
		return nil, projectionErrorf("CenterKernel", ErrShape)
	}
	out, err := matrix.CenterKernel(K)
	if err != nil {
		return nil, projectionErrorf("CenterKernel", err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package projection

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/scissors/matrix"
)

// Quality summarizes how closely approximate similarities track ground truth.
type Quality struct {
	MAE     float64 // mean absolute error
	RMSE    float64 // root mean squared error
	MaxAbs  float64 // largest absolute error
	Pearson float64 // correlation of approx vs truth; NaN when either side is constant
	N       int     // number of compared entries
}

// Evaluate compares an approximate similarity matrix with the true one.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//   - ErrNumerical (NaN/Inf on either side).
//
// An empty pair of matrices yields the zero Quality.
func Evaluate(approx, truth matrix.Matrix) (Quality, error) {
	if err := matrix.ValidateBinarySameShape(approx, truth); err != nil {
		if matrix.ValidateNotNil(approx) != nil || matrix.ValidateNotNil(truth) != nil {
			return Quality{}, projectionErrorf("Evaluate", err)
		}
		return Quality{}, projectionErrorf("Evaluate", ErrDimensionMismatch)
	}
	a, err := matrix.ToDense(approx)
	if err != nil {
		return Quality{}, projectionErrorf("Evaluate", err)
	}
	b, err := matrix.ToDense(truth)
	if err != nil {
		return Quality{}, projectionErrorf("Evaluate", err)
	}
	av, bv := a.RawData(), b.RawData()
	if len(av) == 0 {
		return Quality{}, nil
	}
	for idx := range av {
		if isNonFinite(av[idx]) || isNonFinite(bv[idx]) {
			return Quality{}, projectionErrorf("Evaluate", ErrNumerical)
		}
	}

	diff := make([]float64, len(av))
	floats.SubTo(diff, av, bv)
	abs := make([]float64, len(diff))
	sq := make([]float64, len(diff))
	for i, d := range diff {
		abs[i] = math.Abs(d)
		sq[i] = d * d
	}

	return Quality{
		MAE:     stat.Mean(abs, nil),
		RMSE:    math.Sqrt(stat.Mean(sq, nil)),
		MaxAbs:  floats.Max(abs),
		Pearson: stat.Correlation(av, bv, nil),
		N:       len(av),
	}, nil
}

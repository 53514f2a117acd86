// SPDX-License-Identifier: MIT

package basis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/scissors/matrix"
)

// ceilSlack absorbs the representation error of decimal proportions.
const ceilSlack = 1e-9

// ResolveSize turns a size specification into a basis count for a library
// of n objects.
//
//   - 0 < size ≤ 1: proportion, count = ceil(size·n). A product within
//     rounding noise of an integer is not rounded up (0.7·10 gives 7).
//   - size > 1: integral count, must not exceed n.
//
// Errors: ErrInvalidSize (NaN, ≤ 0, fractional count, count > n, n < 0).
func ResolveSize(size float64, n int) (int, error) {
	switch {
	case n < 0, math.IsNaN(size), size <= 0:
		return 0, basisErrorf("ResolveSize", ErrInvalidSize)
	case size <= 1:
		return int(math.Ceil(size*float64(n) - ceilSlack)), nil
	case size != math.Trunc(size) || size > float64(n):
		return 0, basisErrorf("ResolveSize", ErrInvalidSize)
	default:
		return int(size), nil
	}
}

// Choose samples a basis of the given size from n objects without
// replacement.
//
// Implementation:
//   - Stage 1: k = ResolveSize(size, n).
//   - Stage 2: sampleuv.WithoutReplacement draws k distinct indices from
//     [0, n) using the configured source.
//   - Stage 3: Sort ascending so basis order follows library order.
//
// Errors:
//   - ErrInvalidSize.
//
// Complexity:
//   - Time O(k log k), Space O(k).
func Choose(n int, size float64, opts ...Option) ([]int, error) {
	k, err := ResolveSize(size, n)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	idx := make([]int, k)
	if k > 0 {
		sampleuv.WithoutReplacement(idx, n, o.src)
	}
	sort.Ints(idx)

	return idx, nil
}

// Split slices a full N×N inner-product matrix into the basis kernel and
// the library-vs-basis rows.
//
// Returns:
//   - bb: len(idx)×len(idx), bb[a,b] = all[idx[a], idx[b]].
//   - lb: N×len(idx), lb[i,b] = all[i, idx[b]].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - ErrInvalidIndex (out of range or repeated index).
func Split(all matrix.Matrix, idx []int) (bb, lb *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(all); err != nil {
		return nil, nil, basisErrorf("Split", err)
	}
	n := all.Rows()
	seen := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		if _, dup := seen[i]; dup || i < 0 || i >= n {
			return nil, nil, basisErrorf("Split", ErrInvalidIndex)
		}
		seen[i] = struct{}{}
	}

	d, err := matrix.ToDense(all)
	if err != nil {
		return nil, nil, basisErrorf("Split", err)
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	if bb, err = d.Induced(idx, idx); err != nil {
		return nil, nil, basisErrorf("Split", err)
	}
	if lb, err = d.Induced(rows, idx); err != nil {
		return nil, nil, basisErrorf("Split", err)
	}

	return bb, lb, nil
}

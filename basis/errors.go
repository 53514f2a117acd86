// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a basis size that is neither a proportion in
	// (0, 1] nor an integral count in (1, n].
	ErrInvalidSize = errors.New("basis: invalid basis size")

	// ErrInvalidIndex indicates a basis index outside [0, n) or a repeated one.
	ErrInvalidIndex = errors.New("basis: invalid basis index")
)

func basisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

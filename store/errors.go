// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no array is stored under the requested name.
	ErrNotFound = errors.New("store: array not found")

	// ErrEmptyName indicates an empty dataset name.
	ErrEmptyName = errors.New("store: empty array name")

	// ErrCorrupt indicates a payload whose size disagrees with its shape.
	ErrCorrupt = errors.New("store: corrupt array payload")

	// ErrCSV indicates malformed CSV input (ragged rows or non-numeric cells).
	ErrCSV = errors.New("store: malformed CSV")
)

func storeErrorf(tag, name string, err error) error {
	return fmt.Errorf("%s(%q): %w", tag, name, err)
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/scissors/store"
)

// withStore opens path, runs fn and closes the store, keeping the first error.
func withStore(path string, fn func(*store.DB) error) (err error) {
	if path == "" {
		return fmt.Errorf("missing store path")
	}
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(db)
}

// logf writes a progress line unless quiet.
func logf(quiet bool, format string, args ...any) {
	if !quiet {
		log.Printf(format, args...)
	}
}

// SPDX-License-Identifier: MIT

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/scissors/matrix"
)

// ReadCSV parses one array, one CSV record per row. Cells are parsed with
// strconv.ParseFloat, so "NaN" and "Inf" are accepted and kept. Empty input
// yields a 0×0 array.
//
// Errors: ErrCSV (ragged rows, unparsable cells), reader errors.
func ReadCSV(r io.Reader) (*matrix.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		data []float64
		cols = -1
		rows int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %v", ErrCSV, err)
			}
			return nil, err
		}
		if cols < 0 {
			cols = len(rec)
		}
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %v", ErrCSV, rows+1, j+1, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return matrix.NewDense(0, 0)
	}

	return matrix.NewFromSlice(rows, cols, data, matrix.WithNoValidateNaNInf())
}

// WriteCSV writes m one row per record using the shortest representation
// that round-trips exactly.
func WriteCSV(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range rec {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

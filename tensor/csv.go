// SPDX-License-Identifier: MIT

package tensor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV reads one flattened instance per record. Lines starting with '#'
// are comments; surrounding whitespace in fields is ignored. A nil shape is
// inferred as {fields per record}.
//
// Errors:
//   - ErrParse (wrapped with the 1-based line) for non-numeric fields.
//   - ErrShapeMismatch / ErrEmptyBatch / ErrBadShape from FromRows.
func ReadCSV(r io.Reader, shape Shape) (*Batch, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, tensorErrorf("ReadCSV", fmt.Errorf("%w: %v", ErrParse, err))
		}
		line, _ := cr.FieldPos(0)
		row := make([]float64, len(rec))
		for j, f := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, tensorErrorf(fmt.Sprintf("ReadCSV(line %d, field %d)", line, j+1), fmt.Errorf("%w: %v", ErrParse, err))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return FromRows(shape, rows)
}

// SPDX-License-Identifier: MIT

package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Table is a parsed CSV summary. Cells are kept as text; Column converts.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// ReadTable parses a CSV summary whose first row names the columns.
// Short rows are padded with empty cells.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{Header: records[0], index: make(map[string]int, len(records[0]))}
	for i, h := range t.Header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.Header[i] = h
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	for _, rec := range records[1:] {
		row := make([]string, len(t.Header))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Has reports whether the header names col.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Column returns col as numbers, NaN for empty cells.
// Complexity: O(rows).
func (t *Table) Column(col string) ([]float64, error) {
	j, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, col)
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		cell := strings.TrimSpace(row[j])
		if cell == "" || strings.EqualFold(cell, "nan") {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %q: %q", ErrBadCell, i+2, col, cell)
		}
		out[i] = v
	}

	return out, nil
}

// Labels returns col as raw strings.
func (t *Table) Labels(col string) ([]string, error) {
	j, ok := t.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, col)
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package stats

import "errors"

var (
	// ErrNoPairs indicates no row carries both the subject and the reference value.
	ErrNoPairs = errors.New("stats: no paired observations")
	// ErrNoColumn indicates a requested column is absent from the table header.
	ErrNoColumn = errors.New("stats: unknown column")
	// ErrEmptyTable indicates the CSV input has no header row.
	ErrEmptyTable = errors.New("stats: empty table")
	// ErrBadCell indicates a non-empty cell that is not a number.
	ErrBadCell = errors.New("stats: cell is not a number")
)

// SPDX-License-Identifier: MIT

package gvrp

import "errors"

var (
	// ErrMalformed indicates a document that does not follow the text format.
	ErrMalformed = errors.New("gvrp: malformed document")
	// ErrInconsistent indicates a well-formed document whose fields contradict
	// each other (depot count, group partition, work distance).
	ErrInconsistent = errors.New("gvrp: inconsistent document")
)

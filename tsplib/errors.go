// SPDX-License-Identifier: MIT

package tsplib

import "errors"

// Sentinel errors for instance parsing. Callers match them with errors.Is;
// Parse wraps them with the instance name and counts.
var (
	// ErrEncoding indicates the raw bytes are not decodable as UTF-8 text.
	ErrEncoding = errors.New("tsplib: input is not valid UTF-8 text")
	// ErrUnsupportedFormat indicates no coordinate section marker was found.
	ErrUnsupportedFormat = errors.New("tsplib: no coordinate section")
	// ErrTooFewNodes indicates fewer than MinNodes coordinates were parsed.
	ErrTooFewNodes = errors.New("tsplib: too few nodes")
)

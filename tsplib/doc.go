// SPDX-License-Identifier: MIT

// Package tsplib extracts node coordinates from TSPLIB-style instance files.
//
// What:
//
//   - Parse / ParseFile read a text instance and return an *Instance with
//     nodes numbered 1..N in parse order.
//   - NODE_COORD_SECTION is preferred over DISPLAY_DATA_SECTION wherever
//     it appears. The scan starts at the preferred marker's first line and
//     runs until a line starting with EOF.
//   - Header lines before the section (NAME, COMMENT, DIMENSION...)
//     are kept verbatim in Instance.Header.
//
// Coordinate lines have the form "<int-id> <x> <y>"; anything that does not
// parse (including NaN or ±Inf coordinates) is skipped silently. The id
// column of the file is not trusted: identity is parse order.
//
// Errors:
//
//   - ErrEncoding: input bytes are not valid UTF-8 text.
//   - ErrUnsupportedFormat: no coordinate section (e.g. EXPLICIT matrices).
//   - ErrTooFewNodes: fewer than MinNodes coordinates were extracted.
//
// All three describe instances that cannot be converted; callers usually
// skip them rather than fail.
//
// Complexity: O(L) time and memory for L input bytes.
package tsplib

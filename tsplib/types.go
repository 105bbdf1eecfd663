// SPDX-License-Identifier: MIT

package tsplib

import (
	"strconv"

	"github.com/katalvlaran/gvrp/geom"
)

// Section markers recognised as the start of a coordinate list.
const (
	NodeCoordSection   = "NODE_COORD_SECTION"
	DisplayDataSection = "DISPLAY_DATA_SECTION"
	eofMarker          = "EOF"
)

// MinNodes is the smallest node count an instance must have to be usable.
const MinNodes = 3

// Node is one parsed coordinate. ID is 1-based and follows parse order.
type Node struct {
	ID int
	geom.Point
}

// Instance is an immutable parsed benchmark instance.
type Instance struct {
	// Name is derived from the source file's base name without extension.
	Name string
	// Section is the marker that started the coordinate scan.
	Section string
	// Header holds "KEY : VALUE" lines found before the coordinate section,
	// keyed by the upper-cased KEY.
	Header map[string]string
	// Nodes in parse order; Nodes[i].ID == i+1.
	Nodes []Node
}

// Dimension returns the number of parsed nodes.
func (in *Instance) Dimension() int { return len(in.Nodes) }

// Points returns the node coordinates in ID order as a fresh slice.
// Complexity: O(N).
func (in *Instance) Points() []geom.Point {
	pts := make([]geom.Point, len(in.Nodes))
	for i, n := range in.Nodes {
		pts[i] = n.Point
	}

	return pts
}

// Bounds returns the bounding box of all node coordinates.
func (in *Instance) Bounds() geom.Bounds {
	// Parse guarantees at least MinNodes nodes, so the error is unreachable.
	b, _ := geom.BoundsOf(in.Points())

	return b
}

// DeclaredDimension returns the DIMENSION header value, if present and numeric.
// It may disagree with Dimension(); the header is informational only.
func (in *Instance) DeclaredDimension() (int, bool) {
	v, ok := in.Header["DIMENSION"]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}

	return n, true
}

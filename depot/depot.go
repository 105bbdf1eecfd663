// SPDX-License-Identifier: MIT

// Package depot synthesises one depot coordinate per vehicle around an
// instance's bounding box.
//
// The placement box is the bounding box grown by 10% of its larger side on
// every edge, where a zero side counts as 1.0. Two layouts exist:
//
//   - LayoutCorners (≤ 4 vehicles): corners in the fixed order bottom-left,
//     top-right, top-left, bottom-right; depot i takes corner i mod 4.
//   - LayoutRows (> 4 vehicles): ⌊v/2⌋ depots evenly spaced along the bottom
//     edge, the rest along the top edge, left to right, bottom row first.
//
// Depots are not instance nodes and carry no node ID.
package depot

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gvrp/geom"
)

// ErrNoVehicles is returned when fewer than one depot is requested.
var ErrNoVehicles = errors.New("depot: vehicle count must be ≥ 1")

// MarginRatio is the share of the larger box side added on every edge.
const MarginRatio = 0.1

// cornerLimit is the largest fleet served by the corner layout.
const cornerLimit = 4

// Layout selects a placement strategy.
type Layout int

const (
	// LayoutCorners cycles through the four placement-box corners.
	LayoutCorners Layout = iota
	// LayoutRows spreads depots along the bottom and top edges.
	LayoutRows
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutCorners:
		return "corners"
	case LayoutRows:
		return "rows"
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

// ChooseLayout returns the layout used for a fleet of the given size.
func ChooseLayout(vehicles int) Layout {
	if vehicles <= cornerLimit {
		return LayoutCorners
	}

	return LayoutRows
}

// PlacementBounds grows b by MarginRatio·max(width, height) on all sides.
// Zero extents count as 1.0, so a single point or a collinear set still
// gets distinct depots around it.
func PlacementBounds(b geom.Bounds) geom.Bounds {
	w, h := b.Extents()

	return b.Expand(max(w, h) * MarginRatio)
}

// Place returns exactly vehicles depots framing b.
// Complexity: O(vehicles).
func Place(b geom.Bounds, vehicles int) ([]geom.Point, error) {
	if vehicles < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoVehicles, vehicles)
	}
	pb := PlacementBounds(b)
	if ChooseLayout(vehicles) == LayoutCorners {
		return corners(pb, vehicles), nil
	}

	return rows(pb, vehicles), nil
}

func corners(pb geom.Bounds, vehicles int) []geom.Point {
	cs := pb.Corners()
	out := make([]geom.Point, vehicles)
	for i := range out {
		out[i] = cs[i%len(cs)]
	}

	return out
}

func rows(pb geom.Bounds, vehicles int) []geom.Point {
	bottom := vehicles / 2
	top := vehicles - bottom
	out := make([]geom.Point, 0, vehicles)
	out = appendRow(out, pb.MinX, pb.MaxX, pb.MinY, bottom)

	return appendRow(out, pb.MinX, pb.MaxX, pb.MaxY, top)
}

// appendRow spaces k depots from left to right inclusive at height y.
// A single depot sits at left.
func appendRow(out []geom.Point, left, right, y float64, k int) []geom.Point {
	span := float64(max(1, k-1))
	for i := 0; i < k; i++ {
		out = append(out, geom.Point{X: left + (right-left)*float64(i)/span, Y: y})
	}

	return out
}

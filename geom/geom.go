// SPDX-License-Identifier: MIT

// Package geom holds the planar primitives shared by the converter stages:
// points, axis-aligned bounding boxes and the extent guards used whenever a
// box is divided into cells or framed by a margin.
//
// All functions are pure and allocation-free except BoundsOf, which only
// reads its input.
package geom

import (
	"errors"
	"math"
)

// ErrEmpty is returned by BoundsOf when no points are given.
var ErrEmpty = errors.New("geom: empty point set")

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates are neither NaN nor ±Inf.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Bounds is an axis-aligned bounding box. A Bounds built by BoundsOf always
// satisfies MinX ≤ MaxX and MinY ≤ MaxY.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsOf returns the tightest box containing every point.
// Complexity: O(n) time, O(1) memory.
func BoundsOf(pts []Point) (Bounds, error) {
	if len(pts) == 0 {
		return Bounds{}, ErrEmpty
	}
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}

	return b, nil
}

// Width is MaxX-MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height is MaxY-MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Diagonal is the Euclidean length of the box diagonal.
func (b Bounds) Diagonal() float64 {
	return math.Hypot(b.Width(), b.Height())
}

// Extents returns width and height with every zero extent replaced by 1.0,
// so a collinear or single-point set can still be divided into cells.
func (b Bounds) Extents() (w, h float64) {
	w, h = b.Width(), b.Height()
	if w == 0 {
		w = 1.0
	}
	if h == 0 {
		h = 1.0
	}

	return w, h
}

// Expand grows the box by margin on all four sides.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// Contains reports whether p lies inside the closed box.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Corners returns the four box corners in the order
// bottom-left, top-right, top-left, bottom-right.
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
		{X: b.MaxX, Y: b.MinY},
	}
}

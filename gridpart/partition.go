// SPDX-License-Identifier: MIT

package gridpart

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gvrp/geom"
)

// Partition groups pts into at least opts.MinGroups(len(pts)) grid cells when
// it can, retrying with a finer grid after every shortfall.
//
// Schedule: target starts at ⌊n/InitialDivisor⌋ and grows by
// max(1, ⌊n/StepDivisor⌋) per attempt, for at most MaxAttempts attempts.
// The first attempt reaching MinGroups is returned with MetMinimum=true;
// otherwise the last attempt is returned with MetMinimum=false.
//
// Complexity: O(MaxAttempts·n) time, O(n) memory.
func Partition(pts []geom.Point, opts Options) (*Result, error) {
	b, err := prepare(pts, opts)
	if err != nil {
		return nil, err
	}
	var (
		n      = len(pts)
		want   = opts.MinGroups(n)
		target = n / opts.InitialDivisor
		step   = max(1, n/opts.StepDivisor)
		res    *Result
	)
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		res = partitionOnce(pts, b, target, opts.Inflation)
		res.MinGroups = want
		res.Attempts = attempt
		res.MetMinimum = res.Len() >= want
		if res.MetMinimum {
			break
		}
		target += step
	}

	return res, nil
}

// PartitionOnce buckets pts into a single grid sized for targetCells cells.
// Attempts is 1; MinGroups and MetMinimum are filled from opts.
// Complexity: O(n).
func PartitionOnce(pts []geom.Point, targetCells int, opts Options) (*Result, error) {
	b, err := prepare(pts, opts)
	if err != nil {
		return nil, err
	}
	res := partitionOnce(pts, b, targetCells, opts.Inflation)
	res.Attempts = 1
	res.MinGroups = opts.MinGroups(len(pts))
	res.MetMinimum = res.Len() >= res.MinGroups

	return res, nil
}

// GridDim returns the grid side used for a target cell count: ⌊√max(1,t)⌋.
func GridDim(targetCells int) int {
	if targetCells < 1 {
		targetCells = 1
	}

	return max(1, int(math.Sqrt(float64(targetCells))))
}

// prepare validates inputs and returns the point bounds.
func prepare(pts []geom.Point, opts Options) (geom.Bounds, error) {
	if err := opts.Validate(); err != nil {
		return geom.Bounds{}, err
	}
	if len(pts) == 0 {
		return geom.Bounds{}, ErrNoPoints
	}
	for i, p := range pts {
		if !p.Finite() {
			return geom.Bounds{}, fmt.Errorf("%w: point %d (%v, %v)", ErrNonFinite, i+1, p.X, p.Y)
		}
	}

	return geom.BoundsOf(pts)
}

// partitionOnce is the O(n) bucketing step. Cells are numbered in the order
// they are first reached; index maps a cell to its position in order.
func partitionOnce(pts []geom.Point, b geom.Bounds, target int, inflation float64) *Result {
	dim := GridDim(target)
	w, h := b.Extents()
	cellW := w * inflation / float64(dim)
	cellH := h * inflation / float64(dim)

	var (
		index   = make(map[Cell]int)
		order   []Cell
		members [][]int
	)
	for i, p := range pts {
		c := Cell{
			Row: int(math.Floor((p.Y - b.MinY) / cellH)),
			Col: int(math.Floor((p.X - b.MinX) / cellW)),
		}
		slot, ok := index[c]
		if !ok {
			slot = len(order)
			index[c] = slot
			order = append(order, c)
			members = append(members, nil)
		}
		members[slot] = append(members[slot], i+1)
	}

	clusters := make([]Cluster, len(order))
	for slot, c := range order {
		clusters[slot] = Cluster{ID: slot + 1, Cell: c, Members: members[slot]}
	}

	return &Result{
		Clusters:    clusters,
		Nodes:       len(pts),
		TargetCells: target,
		GridDim:     dim,
	}
}

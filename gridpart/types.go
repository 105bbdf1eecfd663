// SPDX-License-Identifier: MIT

package gridpart

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridpart operations.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("gridpart: no points to partition")
	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("gridpart: non-finite coordinate")
	// ErrBadOptions indicates Options that fail Validate.
	ErrBadOptions = errors.New("gridpart: invalid options")
	// ErrInvalidPartition is returned by Result.Check when groups do not
	// partition 1..n exactly.
	ErrInvalidPartition = errors.New("gridpart: groups do not partition the node set")
)

// Options holds the policy constants of the adaptive partitioner.
type Options struct {
	// MaxAttempts caps the number of grid resolutions tried.
	MaxAttempts int
	// InitialDivisor sets the first target cell count to ⌊n/InitialDivisor⌋.
	InitialDivisor int
	// StepDivisor sets the per-retry increment to max(1, ⌊n/StepDivisor⌋).
	StepDivisor int
	// MinGroupDivisor and MinGroupFloor define MinGroups = max(floor, ⌊n/div⌋).
	MinGroupDivisor int
	MinGroupFloor   int
	// Inflation scales both extents so boundary-maximal points fall inside
	// the last row/column instead of on the grid edge. Must be > 1.
	Inflation float64
}

// DefaultOptions returns the converter's policy:
// 20 attempts, target n/5, step n/10, MinGroups max(2, n/6), inflation 1.0001.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:     20,
		InitialDivisor:  5,
		StepDivisor:     10,
		MinGroupDivisor: 6,
		MinGroupFloor:   2,
		Inflation:       1.0001,
	}
}

// Validate rejects option values that make the retry schedule meaningless.
func (o Options) Validate() error {
	switch {
	case o.MaxAttempts < 1:
		return fmt.Errorf("%w: MaxAttempts=%d", ErrBadOptions, o.MaxAttempts)
	case o.InitialDivisor < 1, o.StepDivisor < 1, o.MinGroupDivisor < 1:
		return fmt.Errorf("%w: divisors must be ≥ 1", ErrBadOptions)
	case o.MinGroupFloor < 1:
		return fmt.Errorf("%w: MinGroupFloor=%d", ErrBadOptions, o.MinGroupFloor)
	case !(o.Inflation > 1):
		return fmt.Errorf("%w: Inflation=%v", ErrBadOptions, o.Inflation)
	}

	return nil
}

// MinGroups returns max(MinGroupFloor, ⌊n/MinGroupDivisor⌋).
func (o Options) MinGroups(n int) int {
	return max(o.MinGroupFloor, n/o.MinGroupDivisor)
}

// MinGroups returns the minimum group count for n nodes under DefaultOptions.
func MinGroups(n int) int {
	return DefaultOptions().MinGroups(n)
}

// Cell addresses one grid cell; Row grows with y, Col grows with x.
type Cell struct {
	Row, Col int
}

// Cluster is one non-empty grid cell turned into a group.
type Cluster struct {
	// ID is dense, starting at 1.
	ID int
	// Cell is the grid cell the members fell into.
	Cell Cell
	// Members are 1-based point positions in ascending order.
	Members []int
}

// Result is the outcome of a partition run.
type Result struct {
	// Clusters ordered by ID.
	Clusters []Cluster
	// Nodes is the number of partitioned points.
	Nodes int
	// MinGroups is the group count the run aimed for.
	MinGroups int
	// MetMinimum reports len(Clusters) ≥ MinGroups.
	MetMinimum bool
	// Attempts is the number of grid resolutions tried (≥ 1).
	Attempts int
	// TargetCells and GridDim describe the accepted attempt.
	TargetCells int
	GridDim     int
}

// Len returns the number of groups.
func (r *Result) Len() int { return len(r.Clusters) }

// SPDX-License-Identifier: MIT

package gvrp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gvrp/fleet"
	"github.com/katalvlaran/gvrp/geom"
	"github.com/katalvlaran/gvrp/gridpart"
)

// workDistanceTol absorbs the 4-decimal rounding of decoded coordinates
// (≤ 0.7·√2·1e-4 on the diagonal) and of WORK_DISTANCE itself (5e-5).
const workDistanceTol = 2e-4

// Verify checks the invariants every converted document satisfies:
//   - Dimension equals the node count;
//   - one depot per vehicle, and the vehicle count follows the fleet table;
//   - groups partition node IDs 1..Dimension exactly;
//   - WorkDistance is WorkDistanceRatio × the node bounding-box diagonal.
//
// It returns ErrInconsistent wrapped with the first violation found.
// Complexity: O(N + k).
func Verify(d *Document) error {
	if d.Dimension != len(d.Nodes) {
		return fmt.Errorf("%w: DIMENSION %d but %d nodes", ErrInconsistent, d.Dimension, len(d.Nodes))
	}
	if len(d.Depots) != d.Vehicles {
		return fmt.Errorf("%w: %d depots for %d vehicles", ErrInconsistent, len(d.Depots), d.Vehicles)
	}
	if want := fleet.VehicleCount(d.Dimension); d.Vehicles != want {
		return fmt.Errorf("%w: %d vehicles for %d nodes, want %d", ErrInconsistent, d.Vehicles, d.Dimension, want)
	}
	if err := gridpart.Check(d.Groups, d.Dimension); err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	b, err := geom.BoundsOf(d.Nodes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistent, err)
	}
	if want := WorkDistance(b); math.Abs(d.WorkDistance-want) > workDistanceTol {
		return fmt.Errorf("%w: WORK_DISTANCE %.4f, want %.4f", ErrInconsistent, d.WorkDistance, want)
	}

	return nil
}

// SPDX-License-Identifier: MIT

// Package fleet maps an instance size to the number of vehicles serving it.
//
// The mapping is a fixed step function:
//
//	nodes < 100   → 2
//	nodes < 500   → 4
//	nodes < 1000  → 6
//	nodes < 5000  → 8
//	otherwise     → 16
package fleet

// Tier is one step of the vehicle table: instances with fewer than Below
// nodes (and not matched by an earlier tier) get Vehicles vehicles.
// The last tier has Below == 0 and matches everything left.
type Tier struct {
	Below    int
	Vehicles int
}

var tiers = [...]Tier{
	{Below: 100, Vehicles: 2},
	{Below: 500, Vehicles: 4},
	{Below: 1000, Vehicles: 6},
	{Below: 5000, Vehicles: 8},
	{Below: 0, Vehicles: 16},
}

// Tiers returns a copy of the breakpoint table in ascending order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers[:])

	return out
}

// VehicleCount returns the vehicle count for an instance with n nodes.
// It is total and non-decreasing in n.
// Complexity: O(1).
func VehicleCount(n int) int {
	for _, t := range tiers[:len(tiers)-1] {
		if n < t.Below {
			return t.Vehicles
		}
	}

	return tiers[len(tiers)-1].Vehicles
}

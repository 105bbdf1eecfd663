package fleet_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gvrp/fleet"
)

// TestVehicleCount_Breakpoints pins both sides of every breakpoint.
func TestVehicleCount_Breakpoints(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 2}, {3, 2}, {50, 2}, {99, 2},
		{100, 4}, {499, 4},
		{500, 6}, {999, 6},
		{1000, 8}, {4200, 8}, {4999, 8},
		{5000, 16}, {85900, 16},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			require.Equal(t, tc.want, fleet.VehicleCount(tc.n))
		})
	}
}

// TestVehicleCount_Monotone walks every size up to past the last breakpoint.
func TestVehicleCount_Monotone(t *testing.T) {
	prev := fleet.VehicleCount(0)
	for n := 1; n <= 6000; n++ {
		got := fleet.VehicleCount(n)
		if got < prev {
			t.Fatalf("VehicleCount(%d)=%d < VehicleCount(%d)=%d", n, got, n-1, prev)
		}
		prev = got
	}
}

// TestTiers_Copy ensures callers cannot mutate the table.
func TestTiers_Copy(t *testing.T) {
	ts := fleet.Tiers()
	require.Len(t, ts, 5)
	ts[0].Vehicles = 99
	require.Equal(t, 2, fleet.VehicleCount(10))
	require.Equal(t, 16, fleet.Tiers()[4].Vehicles)
}

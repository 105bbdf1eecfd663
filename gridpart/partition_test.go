package gridpart_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gvrp/geom"
	"github.com/katalvlaran/gvrp/gridpart"
)

// lattice places n points row by row on a cols-wide lattice spanning w×h.
func lattice(n, cols int, w, h float64) []geom.Point {
	rows := (n + cols - 1) / cols
	pts := make([]geom.Point, n)
	for i := range pts {
		r, c := i/cols, i%cols
		pts[i] = geom.Point{
			X: float64(c) * w / float64(max(1, cols-1)),
			Y: float64(r) * h / float64(max(1, rows-1)),
		}
	}

	return pts
}

// uniform draws n deterministic pseudo-random points in [0,w)×[0,h).
func uniform(n int, w, h float64, seed int64) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.Float64() * w, Y: rng.Float64() * h}
	}

	return pts
}

// PartitionSuite exercises the adaptive partitioner.
type PartitionSuite struct {
	suite.Suite
	opts gridpart.Options
}

func (s *PartitionSuite) SetupTest() {
	s.opts = gridpart.DefaultOptions()
}

// TestCompleteness checks the partition property on many shapes and sizes.
func (s *PartitionSuite) TestCompleteness() {
	for _, n := range []int{3, 7, 50, 101, 999, 4200} {
		for seed := int64(0); seed < 3; seed++ {
			pts := uniform(n, 1000, 400, seed)
			res, err := gridpart.Partition(pts, s.opts)
			require.NoError(s.T(), err)
			require.NoError(s.T(), res.Check(), "n=%d seed=%d", n, seed)
			require.Equal(s.T(), n, res.Nodes)
			for _, id := range res.Assignment() {
				require.NotZero(s.T(), id)
			}
		}
	}
}

// TestMinimumGroups checks the best-effort bound on non-degenerate inputs.
func (s *PartitionSuite) TestMinimumGroups() {
	for _, n := range []int{12, 50, 300, 1000, 4200} {
		res, err := gridpart.Partition(uniform(n, 500, 500, 42), s.opts)
		require.NoError(s.T(), err)
		require.True(s.T(), res.MetMinimum, "n=%d groups=%d min=%d", n, res.Len(), res.MinGroups)
		require.GreaterOrEqual(s.T(), res.Len(), gridpart.MinGroups(n))
		require.LessOrEqual(s.T(), res.Attempts, s.opts.MaxAttempts)
	}
}

// TestScenario50 reproduces a 50-node instance on a 100×100 box.
func (s *PartitionSuite) TestScenario50() {
	pts := lattice(50, 10, 100, 100)
	res, err := gridpart.Partition(pts, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, res.MinGroups)
	require.True(s.T(), res.MetMinimum)
	require.GreaterOrEqual(s.T(), res.Len(), 8)
	require.NoError(s.T(), res.Check())
}

// TestZeroHeight partitions horizontally collinear points without dividing by zero.
func (s *PartitionSuite) TestZeroHeight() {
	pts := make([]geom.Point, 30)
	for i := range pts {
		pts[i] = geom.Point{X: float64(i), Y: 5}
	}
	res, err := gridpart.Partition(pts, s.opts)
	require.NoError(s.T(), err)
	require.NoError(s.T(), res.Check())
	for _, c := range res.Clusters {
		require.Equal(s.T(), 0, c.Cell.Row)
	}
	require.True(s.T(), res.MetMinimum)
	require.GreaterOrEqual(s.T(), res.Len(), 5)
}

// TestSinglePointSet collapses to one cluster and reports the shortfall.
func (s *PartitionSuite) TestSinglePointSet() {
	pts := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	res, err := gridpart.Partition(pts, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, res.Len())
	require.False(s.T(), res.MetMinimum)
	require.Equal(s.T(), s.opts.MaxAttempts, res.Attempts)
	require.Equal(s.T(), []int{1, 2, 3}, res.Clusters[0].Members)
}

// TestBestEffortShortfall keeps the last attempt when duplicates defeat the grid.
func (s *PartitionSuite) TestBestEffortShortfall() {
	pts := make([]geom.Point, 60)
	for i := range pts {
		pts[i] = geom.Point{X: 0, Y: 0}
	}
	pts[59] = geom.Point{X: 100, Y: 100}

	res, err := gridpart.Partition(pts, s.opts)
	require.NoError(s.T(), err)
	require.False(s.T(), res.MetMinimum)
	require.Equal(s.T(), 10, res.MinGroups)
	require.Equal(s.T(), 20, res.Attempts)
	require.Equal(s.T(), 2, res.Len())
	// target starts at 12 and grows by 6 for 19 retries
	require.Equal(s.T(), 12+19*6, res.TargetCells)
	require.Equal(s.T(), gridpart.GridDim(res.TargetCells), res.GridDim)
	require.NoError(s.T(), res.Check())
}

// TestDeterministicNumbering verifies first-reached cell order and member order.
func (s *PartitionSuite) TestDeterministicNumbering() {
	pts := []geom.Point{
		{X: 10, Y: 10}, // top-right cell first
		{X: 0, Y: 0},
		{X: 9, Y: 9},
		{X: 1, Y: 0},
	}
	res, err := gridpart.PartitionOnce(pts, 4, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.GridDim)
	require.Len(s.T(), res.Clusters, 2)
	require.Equal(s.T(), gridpart.Cluster{ID: 1, Cell: gridpart.Cell{Row: 1, Col: 1}, Members: []int{1, 3}}, res.Clusters[0])
	require.Equal(s.T(), gridpart.Cluster{ID: 2, Cell: gridpart.Cell{Row: 0, Col: 0}, Members: []int{2, 4}}, res.Clusters[1])

	again, err := gridpart.PartitionOnce(pts, 4, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res, again)
}

// TestBoundaryPointsInsideGrid ensures maximal points land in the last cell.
func (s *PartitionSuite) TestBoundaryPointsInsideGrid() {
	pts := lattice(100, 10, 90, 90)
	res, err := gridpart.PartitionOnce(pts, 9, s.opts)
	require.NoError(s.T(), err)
	for _, c := range res.Clusters {
		require.GreaterOrEqual(s.T(), c.Cell.Row, 0)
		require.GreaterOrEqual(s.T(), c.Cell.Col, 0)
		require.Less(s.T(), c.Cell.Row, res.GridDim)
		require.Less(s.T(), c.Cell.Col, res.GridDim)
	}
	require.Equal(s.T(), 9, res.Len())
}

func TestPartitionSuite(t *testing.T) {
	suite.Run(t, new(PartitionSuite))
}

//----------------------------------------------------------------------------//
// Errors and helpers
//----------------------------------------------------------------------------//

// TestPartition_Errors checks every input sentinel with errors.Is.
func TestPartition_Errors(t *testing.T) {
	bad := gridpart.DefaultOptions()
	bad.Inflation = 1

	cases := []struct {
		name string
		pts  []geom.Point
		opts gridpart.Options
		err  error
	}{
		{"Empty", nil, gridpart.DefaultOptions(), gridpart.ErrNoPoints},
		{"NaN", []geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}}, gridpart.DefaultOptions(), gridpart.ErrNonFinite},
		{"Inf", []geom.Point{{X: math.Inf(1), Y: 0}}, gridpart.DefaultOptions(), gridpart.ErrNonFinite},
		{"Inflation", []geom.Point{{X: 0, Y: 0}}, bad, gridpart.ErrBadOptions},
		{"ZeroAttempts", []geom.Point{{X: 0, Y: 0}}, gridpart.Options{InitialDivisor: 1, StepDivisor: 1, MinGroupDivisor: 1, MinGroupFloor: 1, Inflation: 2}, gridpart.ErrBadOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridpart.Partition(tc.pts, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("Partition error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestMinGroupsAndGridDim pins the derived constants.
func TestMinGroupsAndGridDim(t *testing.T) {
	require.Equal(t, 2, gridpart.MinGroups(3))
	require.Equal(t, 2, gridpart.MinGroups(17))
	require.Equal(t, 8, gridpart.MinGroups(50))
	require.Equal(t, 700, gridpart.MinGroups(4200))

	require.Equal(t, 1, gridpart.GridDim(0))
	require.Equal(t, 1, gridpart.GridDim(3))
	require.Equal(t, 2, gridpart.GridDim(4))
	require.Equal(t, 3, gridpart.GridDim(10))
}

// TestCheck_Defects covers each class of invalid partition.
func TestCheck_Defects(t *testing.T) {
	cases := []struct {
		name   string
		groups [][]int
		n      int
	}{
		{"Empty", [][]int{{1, 2}, {}}, 2},
		{"Overlap", [][]int{{1, 2}, {2, 3}}, 3},
		{"Omission", [][]int{{1}, {3}}, 3},
		{"OutOfRange", [][]int{{1, 2, 4}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, gridpart.Check(tc.groups, tc.n), gridpart.ErrInvalidPartition)
		})
	}
	require.NoError(t, gridpart.Check([][]int{{2}, {1, 3}}, 3))
}

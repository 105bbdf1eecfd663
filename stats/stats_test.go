package stats_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gvrp/stats"
)

const summaryCSV = `Instance,Dimension,Hybrid_Dist,Gurobi_Dist,Baseline_Dist
big,200,95,,100
small,50,10,8,
mid,149,20,20,25
nodim,,5,,
`

var nan = math.NaN()

// TestReadTable parses empty cells as NaN and reports unknown columns.
func TestReadTable(t *testing.T) {
	tbl, err := stats.ReadTable(strings.NewReader(summaryCSV))
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())
	require.True(t, tbl.Has("Gurobi_Dist"))

	g, err := tbl.Column("Gurobi_Dist")
	require.NoError(t, err)
	require.True(t, math.IsNaN(g[0]))
	require.Equal(t, 8.0, g[1])

	names, err := tbl.Labels("Instance")
	require.NoError(t, err)
	require.Equal(t, []string{"big", "small", "mid", "nodim"}, names)

	_, err = tbl.Column("Nope")
	require.ErrorIs(t, err, stats.ErrNoColumn)

	_, err = stats.ReadTable(strings.NewReader(""))
	require.ErrorIs(t, err, stats.ErrEmptyTable)

	bad, err := stats.ReadTable(strings.NewReader("a\nx\n"))
	require.NoError(t, err)
	_, err = bad.Column("a")
	require.ErrorIs(t, err, stats.ErrBadCell)
}

// TestCompareTally counts wins, ties and losses on paired rows only.
func TestCompareTally(t *testing.T) {
	c, err := stats.Compare("s vs r", []float64{1, 2, 3, nan}, []float64{2, 2, 1, 5})
	require.NoError(t, err)
	require.Equal(t, 3, c.N)
	require.Equal(t, 1, c.Wins)
	require.Equal(t, 1, c.Ties)
	require.Equal(t, 1, c.Losses)

	_, err = stats.Compare("empty", []float64{nan, 1}, []float64{2, nan})
	require.ErrorIs(t, err, stats.ErrNoPairs)

	_, err = stats.Compare("short", []float64{1}, []float64{1, 2})
	require.Error(t, err)

	same, err := stats.Compare("same", []float64{4, 5}, []float64{4, 5})
	require.NoError(t, err)
	require.Equal(t, 2, same.Ties)
	require.Equal(t, 1.0, same.PValue)
}

// TestSignedRankLess checks exact and approximate p-values.
func TestSignedRankLess(t *testing.T) {
	tests := []struct {
		name  string
		diffs []float64
		want  float64
		exact bool
	}{
		{"all negative n3", []float64{-1, -2, -3}, 0.125, true},
		{"all negative n5", []float64{-1, -2, -3, -4, -5}, 1.0 / 32, true},
		{"one positive", []float64{1, -2, -3}, 0.25, true},
		{"all positive", []float64{1, 2, 3}, 1, true},
		{"zero dropped", []float64{0, -1, -2}, 0.08986, false},
		{"tied magnitudes", []float64{-1, -1, -2}, 0.05123, false},
		{"only zeros", []float64{0, 0}, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, exact := stats.SignedRankLess(tc.diffs)
			require.InDelta(t, tc.want, p, 1e-3)
			require.Equal(t, tc.exact, exact)
		})
	}
}

// TestSignedRankLargeSample falls back to the normal approximation above 50.
func TestSignedRankLargeSample(t *testing.T) {
	diffs := make([]float64, 60)
	for i := range diffs {
		diffs[i] = -float64(i + 1)
	}
	p, exact := stats.SignedRankLess(diffs)
	require.False(t, exact)
	require.Less(t, p, 1e-10)
}

// TestGaps switches reference at the cutoff and sorts by dimension.
func TestGaps(t *testing.T) {
	tbl, err := stats.ReadTable(strings.NewReader(summaryCSV))
	require.NoError(t, err)

	gaps, err := stats.Gaps(tbl, "Dimension", "Hybrid_Dist", "Gurobi_Dist", "Baseline_Dist", stats.DefaultCutoff)
	require.NoError(t, err)
	require.Len(t, gaps, 4)

	require.Equal(t, 1, gaps[0].Row)
	require.InDelta(t, 25, gaps[0].Percent, 1e-9)
	require.Equal(t, 2, gaps[1].Row)
	require.InDelta(t, 0, gaps[1].Percent, 1e-9)
	require.Equal(t, 0, gaps[2].Row)
	require.InDelta(t, -5, gaps[2].Percent, 1e-9)
	require.Equal(t, 3, gaps[3].Row)
	require.True(t, math.IsNaN(gaps[3].Percent))

	require.Equal(t, 2, stats.Split(gaps, stats.DefaultCutoff))

	_, err = stats.Gaps(tbl, "Dimension", "Missing", "Gurobi_Dist", "Baseline_Dist", stats.DefaultCutoff)
	require.ErrorIs(t, err, stats.ErrNoColumn)
}

// TestCompareFromTable reproduces the small-scale pairing.
func TestCompareFromTable(t *testing.T) {
	tbl, err := stats.ReadTable(strings.NewReader(summaryCSV))
	require.NoError(t, err)
	s, _ := tbl.Column("Hybrid_Dist")
	r, _ := tbl.Column("Gurobi_Dist")

	c, err := stats.Compare("AILS vs. Gurobi", s, r)
	require.NoError(t, err)
	require.Equal(t, 2, c.N)
	require.Equal(t, 1, c.Losses)
	require.Equal(t, 1, c.Ties)
	require.InDelta(t, 0.8413, c.PValue, 1e-3)
}

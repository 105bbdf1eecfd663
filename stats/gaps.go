// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"
)

// DefaultCutoff is the dimension at which the reference switches from the
// small-scale solver to the large-scale one.
const DefaultCutoff = 150

// Gap is the subject's deviation from the size-appropriate reference on one row.
type Gap struct {
	Row       int // data row index in the table
	Dimension float64
	Subject   float64
	Reference float64
	// Percent is (Subject-Reference)/Reference·100; negative means the
	// subject is better. NaN when either value is missing.
	Percent float64
}

// Gaps returns one Gap per row ordered by dimension (stable; rows with a
// missing dimension last). Rows below cutoff are measured against smallRef,
// the rest against largeRef.
// Complexity: O(rows log rows).
func Gaps(t *Table, dimCol, subjectCol, smallRef, largeRef string, cutoff float64) ([]Gap, error) {
	cols := make([][]float64, 4)
	for i, name := range []string{dimCol, subjectCol, smallRef, largeRef} {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	dims, subj, small, large := cols[0], cols[1], cols[2], cols[3]

	out := make([]Gap, t.Len())
	for i := range out {
		g := Gap{Row: i, Dimension: dims[i], Subject: subj[i], Reference: math.NaN()}
		switch {
		case math.IsNaN(g.Dimension):
		case g.Dimension < cutoff:
			g.Reference = small[i]
		default:
			g.Reference = large[i]
		}
		g.Percent = (g.Subject - g.Reference) / g.Reference * 100
		if math.IsNaN(g.Subject) || math.IsNaN(g.Reference) {
			g.Percent = math.NaN()
		}
		out[i] = g
	}
	sort.SliceStable(out, func(a, b int) bool {
		da, db := out[a].Dimension, out[b].Dimension
		if math.IsNaN(db) {
			return !math.IsNaN(da)
		}

		return da < db
	})

	return out, nil
}

// Split returns the index of the first gap at or above cutoff, i.e. the
// boundary between the small-scale and large-scale segments of sorted gaps.
func Split(gaps []Gap, cutoff float64) int {
	return sort.Search(len(gaps), func(i int) bool {
		d := gaps[i].Dimension
		return math.IsNaN(d) || d >= cutoff
	})
}

// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"
)

// Epsilon is the tolerance under which two objective values tie.
const Epsilon = 1e-9

// exactLimit is the largest sample served by the exact signed-rank distribution.
const exactLimit = 50

// Comparison is the paired outcome of a subject solver against a reference.
type Comparison struct {
	Label  string
	N      int // rows where both values exist
	Wins   int // subject < reference - Epsilon
	Ties   int // |subject - reference| < Epsilon
	Losses int // subject > reference + Epsilon
	// PValue of the one-sided Wilcoxon signed-rank test for subject < reference.
	PValue float64
	// Exact reports whether PValue comes from the exact null distribution.
	Exact bool
}

// String renders the comparison on one line.
func (c Comparison) String() string {
	return fmt.Sprintf("%s: n=%d wins=%d ties=%d losses=%d p=%.2e", c.Label, c.N, c.Wins, c.Ties, c.Losses, c.PValue)
}

// Compare pairs subject[i] with reference[i], dropping rows where either is
// NaN, and tallies the result for a minimisation objective.
// Complexity: O(n log n) plus O(n³) for the exact distribution when n ≤ 50.
func Compare(label string, subject, reference []float64) (Comparison, error) {
	if len(subject) != len(reference) {
		return Comparison{}, fmt.Errorf("stats: %s: %d subject values vs %d reference values", label, len(subject), len(reference))
	}
	c := Comparison{Label: label, PValue: 1}
	diffs := make([]float64, 0, len(subject))
	for i := range subject {
		s, r := subject[i], reference[i]
		if math.IsNaN(s) || math.IsNaN(r) {
			continue
		}
		c.N++
		switch {
		case s < r-Epsilon:
			c.Wins++
		case s > r+Epsilon:
			c.Losses++
		}
		if math.Abs(s-r) < Epsilon {
			c.Ties++
		}
		diffs = append(diffs, s-r)
	}
	if c.N == 0 {
		return Comparison{}, fmt.Errorf("%w: %s", ErrNoPairs, label)
	}
	c.PValue, c.Exact = SignedRankLess(diffs)

	return c, nil
}

// SignedRankLess returns the one-sided Wilcoxon signed-rank p-value for the
// alternative "the differences are centred below zero". Zero differences are
// dropped; if none remain the p-value is 1. The exact null distribution is
// used for at most 50 differences with no zeros and no tied magnitudes,
// otherwise the normal approximation with tie correction.
func SignedRankLess(diffs []float64) (p float64, exact bool) {
	nonzero := make([]float64, 0, len(diffs))
	for _, d := range diffs {
		if d != 0 {
			nonzero = append(nonzero, d)
		}
	}
	n := len(nonzero)
	if n == 0 {
		return 1, false
	}

	ranks, tieTerm := rankAbs(nonzero)
	var tPlus float64
	for i, d := range nonzero {
		if d > 0 {
			tPlus += ranks[i]
		}
	}

	if n <= exactLimit && tieTerm == 0 && n == len(diffs) {
		return exactLower(n, int(tPlus)), true
	}

	nf := float64(n)
	mean := nf * (nf + 1) / 4
	variance := nf*(nf+1)*(2*nf+1)/24 - tieTerm/48
	if variance <= 0 {
		return 1, false
	}
	z := (tPlus - mean) / math.Sqrt(variance)

	return 0.5 * math.Erfc(-z/math.Sqrt2), false
}

// rankAbs ranks |v| ascending with average ranks for ties and returns
// Σ(t³ - t) over tie groups.
func rankAbs(v []float64) ([]float64, float64) {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return math.Abs(v[idx[a]]) < math.Abs(v[idx[b]]) })

	ranks := make([]float64, len(v))
	var tieTerm float64
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && math.Abs(v[idx[j]]) == math.Abs(v[idx[i]]) {
			j++
		}
		avg := float64(i+j+1) / 2 // mean of ranks i+1..j
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}
		i = j
	}

	return ranks, tieTerm
}

// exactLower returns P(T⁺ ≤ t) under the null for ranks 1..n.
// counts[s] is the number of sign assignments with positive-rank sum s.
func exactLower(n, t int) float64 {
	total := n * (n + 1) / 2
	counts := make([]float64, total+1)
	counts[0] = 1
	for r := 1; r <= n; r++ {
		for s := total; s >= r; s-- {
			counts[s] += counts[s-r]
		}
	}
	var below float64
	for s := 0; s <= t && s <= total; s++ {
		below += counts[s]
	}

	return below / math.Ldexp(1, n)
}

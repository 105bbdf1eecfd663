// SPDX-License-Identifier: MIT

// Package stats compares a routing solver's results on converted instances
// against reference solvers.
//
// Input is a CSV summary with one row per instance and one column per
// solver (plus a dimension column). Empty cells mean "no result".
//
//   - Compare counts wins, ties and losses for a minimisation objective and
//     runs a one-sided Wilcoxon signed-rank test for "subject < reference".
//   - Gaps measures the subject's relative deviation from a reference that
//     switches with instance size (an exact solver below the cutoff, a
//     heuristic baseline at or above it).
//
// The package performs no I/O beyond the io.Reader handed to ReadTable.
package stats

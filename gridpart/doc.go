// SPDX-License-Identifier: MIT

// Package gridpart partitions planar points into mutually exclusive spatial
// groups by bucketing them into the cells of a uniform grid laid over their
// bounding box.
//
// What:
//
//   - PartitionOnce buckets points into a dim×dim grid, dim = ⌊√target⌋.
//   - Partition retries with a geometrically growing target until the group
//     count reaches MinGroups(n) = max(2, ⌊n/6⌋) or the attempt cap is hit.
//   - Result.Check verifies that the groups partition node IDs 1..n exactly.
//
// Group IDs are dense (1..k) and follow the order in which cells are first
// reached while walking the points in input order, so identical input gives
// identical output. Members are 1-based point positions in ascending order.
//
// Best effort:
//
// When all attempts fail to reach MinGroups (for instance, when most points
// share a coordinate), the last attempt is returned with MetMinimum=false.
// This is not an error; callers decide whether to accept the shortfall.
//
// Complexity:
//
//   - PartitionOnce: O(n) time, O(n) memory. No pairwise distances.
//   - Partition:     O(A·n) for A ≤ Options.MaxAttempts.
//
// Errors:
//
//   - ErrNoPoints:   empty input.
//   - ErrNonFinite:  a coordinate is NaN or ±Inf.
//   - ErrBadOptions: Options failed Validate.
package gridpart

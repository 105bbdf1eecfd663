// SPDX-License-Identifier: MIT

package gridpart

import "fmt"

// Assignment returns the group ID of every node: a[i] is the ID of the
// group holding node i+1, or 0 if no group holds it.
// Complexity: O(n).
func (r *Result) Assignment() []int {
	a := make([]int, r.Nodes)
	for _, c := range r.Clusters {
		for _, m := range c.Members {
			if m >= 1 && m <= r.Nodes {
				a[m-1] = c.ID
			}
		}
	}

	return a
}

// Groups returns the member lists ordered by group ID.
func (r *Result) Groups() [][]int {
	g := make([][]int, len(r.Clusters))
	for i, c := range r.Clusters {
		g[i] = c.Members
	}

	return g
}

// Check verifies that groups partition 1..n exactly: IDs are dense from 1,
// no group is empty, every member is in range and appears once, and no node
// is left out. It returns ErrInvalidPartition wrapped with the first defect.
// Complexity: O(n).
func Check(groups [][]int, n int) error {
	seen := make([]int, n)
	for gi, members := range groups {
		id := gi + 1
		if len(members) == 0 {
			return fmt.Errorf("%w: group %d is empty", ErrInvalidPartition, id)
		}
		for _, m := range members {
			if m < 1 || m > n {
				return fmt.Errorf("%w: group %d member %d outside 1..%d", ErrInvalidPartition, id, m, n)
			}
			if prev := seen[m-1]; prev != 0 {
				return fmt.Errorf("%w: node %d in groups %d and %d", ErrInvalidPartition, m, prev, id)
			}
			seen[m-1] = id
		}
	}
	for i, id := range seen {
		if id == 0 {
			return fmt.Errorf("%w: node %d in no group", ErrInvalidPartition, i+1)
		}
	}

	return nil
}

// Check runs Check on the result's groups and additionally verifies that
// cluster IDs are dense and ordered.
func (r *Result) Check() error {
	for i, c := range r.Clusters {
		if c.ID != i+1 {
			return fmt.Errorf("%w: cluster at position %d has ID %d", ErrInvalidPartition, i, c.ID)
		}
	}

	return Check(r.Groups(), r.Nodes)
}

package spacing

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kcluster/dsu"
)

// MaxSpacing returns the maximum spacing of a k-clustering of m
// elements under the given edge distances: the largest possible
// minimum distance between any two elements landing in different
// clusters, over all partitions into exactly k clusters.
//
// Labels inside edges must be dense, 0..m-1 or 1..m; see the package
// documentation for the sizing rule that makes both conventions work.
//
// Error Conditions:
//   - ErrBadClusterCount : if k < 2 or k >= m (checked before any merge).
//   - ErrDisconnected    : if the edges run out while more than k clusters remain.
//   - dsu.ErrOutOfRange  : wrapped with the offending edge, if a label falls outside [0, m].
//
// Steps:
//  1. Resolve options (DefaultOptions, then supplied Option funcs).
//  2. Validate 2 <= k < m.
//  3. Copy the edges, dropping self-loops (A == B can never merge), and
//     stable-sort the copy ascending by Dist so equal distances keep
//     input order.
//  4. Initialize the disjoint-set structure over m+1 slots; the one
//     slot absent from the data keeps the live count at
//     (real clusters + 1).
//  5. Consume edges in ascending order, unioning endpoints; stop as
//     soon as Count() == k, i.e. the moment an edge links two of the
//     final k clusters.
//  6. Return that last consumed edge's distance: the spacing.
//
// Complexity: O(E log E + E·α(m)) time, O(E + m) memory.
func MaxSpacing(m int, edges []Edge, k int, opts ...Option) (int64, error) {
	// 1. Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Validate the cluster target against the real element count.
	if k < 2 || k >= m {
		return 0, ErrBadClusterCount
	}

	// 3. Copy and sort. The caller's slice stays untouched; self-loops
	//    are dropped up front since a union of an element with itself
	//    can never change the partition.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.A == e.B {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Dist < sorted[j].Dist
	})

	// 4. One spare slot on top of m lets labels be 0-based or 1-based:
	//    exactly one id in [0, m] never occurs in dense data, so the
	//    live count sits one above the real cluster count throughout.
	ds := dsu.New(m + 1)

	// 5. Walk the sorted sequence from the cheapest edge upward. Every
	//    edge is consumed; only cross-cluster edges merge. Reaching
	//    Count() == k means k real clusters just became k-1, and the
	//    edge that did it is the cheapest link between two of the
	//    final k clusters.
	var (
		last Edge // most recently consumed edge
		idx  int  // consumption cursor into sorted
	)
	for ds.Count() > k {
		if idx == len(sorted) {
			return 0, ErrDisconnected
		}
		last = sorted[idx]
		idx++

		merged, err := ds.Union(last.A, last.B)
		if err != nil {
			return 0, fmt.Errorf("spacing: edge (%d,%d): %w", last.A, last.B, err)
		}
		if merged && o.Verbose {
			fmt.Printf("spacing: union(%d, %d) dist=%d clusters=%d\n",
				last.A, last.B, last.Dist, ds.Count()-1)
		}
	}

	// 6. The last consumed edge separates two of the k clusters.
	return last.Dist, nil
}

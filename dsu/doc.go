// Package dsu provides a disjoint-set (union-find) structure with full
// path compression and union by size, the merge engine underneath both
// clustering models in this module.
//
// What
//
//   - Maintain a partition of n elements, identified by dense integer
//     ids 0..n-1, into disjoint sets.
//   - Find(i) returns the canonical representative (root) of i's set
//     and re-points every node walked over directly at that root, so
//     repeated queries flatten the forest.
//   - Union(i, j) merges the two sets by size: the smaller tree hangs
//     under the larger root; on equal sizes j's root attaches under
//     i's root. Reports whether a merge actually happened.
//   - Count() tracks the number of disjoint sets live, decremented by
//     exactly one per effective union. Clustering drivers stop on it.
//
// Why
//
//   - Greedy single-link clustering is a sequence of cheap unions; the
//     structure answers "same cluster?" in near-constant amortized
//     time (inverse Ackermann, < 5 for any feasible n).
//   - A live set count turns "merge until k clusters remain" into a
//     single comparison per step.
//
// Determinism
//
//	Union's size rule plus the fixed tie-break (j's root under i's
//	root) makes the resulting parent forest a pure function of the
//	union sequence. Path compression changes the forest's shape but
//	never set membership.
//
// Complexity (n = elements, m = operations)
//
//   - Time:   O(m · α(n)) for any mix of Find/Union/Connected.
//   - Memory: O(n) - two int slices and a counter.
//
// Concurrency
//
//	A DSU is single-owner: Find mutates parent links even on reads.
//	Wrap it or funnel unions through one goroutine when enumerating in
//	parallel (see hamming's worker mode for the funnel pattern).
//
// Errors
//
//   - ErrOutOfRange  if an element id is negative or >= Len().
//
// See spacing and hamming for the two engines built on this package.
package dsu

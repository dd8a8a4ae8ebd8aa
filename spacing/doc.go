// Package spacing computes the maximum spacing of a k-clustering over
// an explicit weighted edge list, Kruskal-style: merge the closest
// pairs first and stop when exactly k clusters remain.
//
// What
//
//   - Input: m elements, an unordered list of (A, B, Dist) edges, and a
//     target cluster count k with 2 <= k < m.
//   - MaxSpacing stable-sorts a private copy of the edges ascending by
//     distance and unions endpoints in that order, skipping pairs that
//     already share a cluster.
//   - The scan stops at the first edge that links two of the final k
//     clusters; its distance is returned. That distance is the
//     spacing: the minimum distance between any two elements placed in
//     different clusters, and no k-clustering can do better.
//
// Why
//
//	Greedy ascending merges build the minimum spanning forest. Halting
//	the construction at k trees yields the k-clustering with maximum
//	spacing, and the next cross-tree edge in the order is exactly the
//	closest inter-cluster pair. One sort plus one near-linear scan.
//
// Labels and sizing
//
//	Element labels must be dense: either 0..m-1 or 1..m. The engine
//	sizes its disjoint-set structure to m+1, so under either
//	convention exactly one id in [0, m] never occurs in the data and
//	rides along as an untouched singleton. The live set count then
//	tracks (real clusters + 1) for the whole scan, which is what makes
//	the stop rule land on the spacing edge. Sparse or duplicated label
//	spaces break that bookkeeping and are the caller's responsibility
//	to avoid; out-of-range labels fail with the dsu range error.
//
// Determinism
//
//	sort.SliceStable keeps equal-distance edges in input order, so the
//	consumed-edge sequence is reproducible run to run. The returned
//	spacing does not depend on the tie order at all; only the interim
//	cluster composition can differ between tie orders.
//
// Complexity (m = elements, E = edges)
//
//   - Time:   O(E log E) for the sort + O(E · α(m)) for the scan.
//   - Memory: O(E + m) for the private sorted copy and the structure.
//
// Errors
//
//   - ErrBadClusterCount  if k < 2 or k >= m.
//   - ErrDisconnected     if the edges run out before k clusters form.
//   - dsu.ErrOutOfRange   (wrapped) if an edge names a label outside [0, m].
//
// See hamming for the implicit-distance counterpart, where edges are
// never materialized at all.
package spacing

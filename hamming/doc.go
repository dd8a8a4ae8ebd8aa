// Package hamming clusters fixed-length bit vectors by Hamming
// distance without ever materializing the pairwise distance graph:
// neighbors are discovered by enumerating bounded bit flips against a
// hash index of the stored patterns.
//
// What
//
//   - Vector: a fixed-length bit vector packed into 64-bit words, with
//     structural equality, in-place Flip/Set, and a packed form usable
//     as a hash key. Distance(a, b) is the classic XOR + popcount.
//   - Clustering: ingests M vectors (element ids 0..M-1 by position),
//     collapses exact duplicates into their first-seen owner at build
//     time (distance 0 means same cluster by definition), and tracks
//     the partition in a disjoint-set structure.
//   - MergeAtDistance(d): for every distinct stored vector, flips every
//     combination of exactly d positions, probes the index, and unions
//     owners on hits.
//   - MaxClusters(vectors, T): merges all pairs at distance < T and
//     returns the cluster count - the largest k such that a
//     k-clustering of the elements has spacing >= T.
//
// Why not all pairs
//
//	With hundreds of thousands of vectors, M² distance checks are off
//	the table. For small target distances the flip space is tiny:
//	C(L,1) = L and C(L,2) = L(L-1)/2 candidates per vector, each a
//	word-sized hash probe. Total work scales with M·C(L,d), not M².
//
// Enumeration methods
//
//	Two interchangeable generators cover the same C(L,d) combinations
//	exactly once per origin vector:
//
//	  - MethodBacktrack (default): recursive depth-first flip/restore
//	    with a forward-only position cursor. The working copy mutates
//	    in place; every descent flips one bit and every return restores
//	    it.
//	  - MethodCombin: gonum's lexicographic combination generator
//	    (stat/combin) yields the d flip positions per candidate.
//
//	Both produce identical partitions; pick whichever reads better in
//	profiling traces.
//
// Parallelism
//
//	WithWorkers(n) enumerates origin vectors on n goroutines, each with
//	a private working copy probing the read-only index. Discovered
//	pairs funnel through a channel into the single goroutine that owns
//	the disjoint-set structure, so no lock guards the unions and the
//	final partition is identical to the sequential one (union order
//	cannot change a partition). Workers = 0 resolves to one worker per
//	CPU.
//
// Determinism
//
//	Ingestion order fixes element ids and duplicate ownership. The
//	sequential enumeration order is fully reproducible; worker mode
//	reorders unions but never the resulting partition.
//
// Complexity (M = elements, M' = distinct patterns, L = bits)
//
//   - Build:               O(M · L/64) time and memory.
//   - MergeAtDistance(d):  O(M' · C(L,d) · (d + L/64)) probes.
//   - MaxClusters(T):      sum of the above over d = 1..T-1.
//
// Errors
//
//   - ErrNoVectors       : empty input collection.
//   - ErrLengthMismatch  : mixed vector lengths (also from Distance).
//   - ErrBadDistance     : distance or threshold below 1.
//   - ErrUnknownMethod   : method name outside the two constants.
//   - ErrOptionViolation : negative worker count.
//   - ErrBadVector       : malformed ParseVector literal.
//
// Usage
//
//	vs := []hamming.Vector{ /* parsed elsewhere */ }
//
//	// One-shot: the largest k whose k-clustering has spacing >= 3.
//	k, err := hamming.MaxClusters(vs, 3)
//
//	// Stepwise, with tracing and a worker pool:
//	c, err := hamming.NewClustering(vs,
//	    hamming.WithMethod(hamming.MethodCombin),
//	    hamming.WithWorkers(8),
//	    hamming.WithVerbose(),
//	)
//	_ = c.MergeAtDistance(1)
//	_ = c.MergeAtDistance(2)
//	fmt.Println(c.Clusters())
//
// See spacing for the explicit-distance counterpart and dsu for the
// partition structure both engines share.
package hamming

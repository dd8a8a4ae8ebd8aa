package hamming

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/kcluster/dsu"
)

// Clustering is the implicit-distance engine state: a deduplicated
// index of bit patterns plus a disjoint-set partition over the original
// element ids. Construction performs all distance-0 merges; the
// MergeAtDistance passes add the rest. Not safe for concurrent use by
// multiple callers (the worker option parallelizes internally while
// keeping all unions on one goroutine).
type Clustering struct {
	ds    *dsu.DSU
	byKey map[string]int // packed bit key -> element id of first occurrence
	vecs  []Vector       // distinct patterns in first-seen order, private clones
	owner []int          // owner[i] = element id owning vecs[i]
	bits  int            // shared vector length L
	n     int            // ingested element count, duplicates included
	opts  Options
}

// NewClustering ingests the vectors in element-label order (ids are
// assigned 0..len(vectors)-1 by position) and performs the distance-0
// merges: the first element carrying a bit pattern owns it, and every
// later duplicate unions with that owner immediately.
//
// The vectors are cloned into private storage; callers may reuse or
// mutate their slice afterwards.
//
// Error Conditions:
//   - ErrNoVectors       : empty input.
//   - ErrLengthMismatch  : vectors of differing lengths.
//   - ErrUnknownMethod   : option Method is not a known constant.
//   - ErrOptionViolation : option Workers is negative.
//
// Complexity: O(M · L/64) time, O(M · L/64) memory for M vectors.
func NewClustering(vectors []Vector, opts ...Option) (*Clustering, error) {
	// 1. Resolve and validate options before touching any state.
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 2. Validate the collection: non-empty, one shared length.
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}
	bitLen := vectors[0].Len()
	for _, v := range vectors[1:] {
		if v.Len() != bitLen {
			return nil, ErrLengthMismatch
		}
	}

	c := &Clustering{
		ds:    dsu.New(len(vectors)),
		byKey: make(map[string]int, len(vectors)),
		vecs:  make([]Vector, 0, len(vectors)),
		owner: make([]int, 0, len(vectors)),
		bits:  bitLen,
		n:     len(vectors),
		opts:  o,
	}

	// 3. Ingest. Distance 0 means same cluster by definition, so a
	//    repeated pattern merges with its owner right here and is not
	//    stored again: the index stays one entry per distinct pattern.
	var key []byte
	for id, v := range vectors {
		key = v.appendKey(key[:0])
		if own, ok := c.byKey[string(key)]; ok {
			if err := c.unionPair(own, id, 0); err != nil {
				return nil, err
			}

			continue
		}
		c.byKey[string(key)] = id
		c.vecs = append(c.vecs, v.Clone())
		c.owner = append(c.owner, id)
	}

	return c, nil
}

// Clusters returns the number of clusters implied by the merges so far.
func (c *Clustering) Clusters() int { return c.ds.Count() }

// Len returns the total ingested element count, duplicates included.
func (c *Clustering) Len() int { return c.n }

// Distinct returns the number of distinct bit patterns stored.
func (c *Clustering) Distinct() int { return len(c.vecs) }

// Bits returns the shared vector length L.
func (c *Clustering) Bits() int { return c.bits }

// SameCluster reports whether elements i and j, identified by their
// ingestion ids, currently share a cluster.
//
// Returns dsu.ErrOutOfRange when an id falls outside [0, Len()).
func (c *Clustering) SameCluster(i, j int) (bool, error) {
	return c.ds.Connected(i, j)
}

// Candidates returns C(Bits(), d): how many flip combinations one
// MergeAtDistance pass probes per distinct vector. Zero when d is
// negative or exceeds the bit length.
func (c *Clustering) Candidates(d int) int {
	if d < 0 || d > c.bits {
		return 0
	}

	return combin.Binomial(c.bits, d)
}

// unionPair merges two element ids and traces effective merges when
// Verbose is set. All unions in the package funnel through here.
func (c *Clustering) unionPair(a, b, d int) error {
	merged, err := c.ds.Union(a, b)
	if err != nil {
		return err
	}
	if merged && c.opts.Verbose {
		fmt.Printf("hamming: union(%d, %d) dist=%d\n", a, b, d)
	}

	return nil
}

// MaxClusters returns the maximum number of clusters k such that a
// k-clustering of the vectors has spacing >= the given threshold: after
// every pair of elements closer than the threshold has been merged,
// whatever clusters remain are pairwise at least that far apart.
//
// Each call builds fresh state, so results are independent across
// thresholds. spacing == 1 performs no enumeration at all: duplicates
// collapse and the distinct-pattern cluster count is the answer.
//
// Error Conditions:
//   - ErrBadDistance : spacing < 1, rejected before any work.
//   - Construction errors from NewClustering, unchanged.
//
// Steps:
//  1. Validate spacing >= 1.
//  2. Build (distance-0 merges happen during ingestion).
//  3. MergeAtDistance(d) for every d in 1..spacing-1.
//  4. Return Clusters().
//
// Complexity: O(M · Σ C(L,d) · L/64) probes over d in 1..spacing-1.
func MaxClusters(vectors []Vector, spacing int, opts ...Option) (int, error) {
	// 1. The threshold gate runs before any state exists.
	if spacing < 1 {
		return 0, ErrBadDistance
	}

	// 2. Build: ingestion performs the distance-0 merges.
	c, err := NewClustering(vectors, opts...)
	if err != nil {
		return 0, err
	}

	// 3. Forcibly merge every pair strictly closer than the threshold.
	for d := 1; d < spacing; d++ {
		if err := c.MergeAtDistance(d); err != nil {
			return 0, err
		}
	}

	// 4. No pair at distance >= spacing was ever merged, so the count
	//    is exactly the best achievable k.
	return c.Clusters(), nil
}

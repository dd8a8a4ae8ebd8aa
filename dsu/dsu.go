package dsu

import "errors"

// ErrOutOfRange indicates an element id outside [0, Len()).
// Returned by every method that takes element ids.
var ErrOutOfRange = errors.New("dsu: element index out of range")

// DSU is a disjoint-set forest over elements 0..n-1 with path
// compression and union by size. The zero value is unusable; construct
// with New. Not safe for concurrent use: Find compresses paths, so even
// read-style calls mutate internal state.
type DSU struct {
	// parent[i] is i's parent in the forest; roots satisfy parent[i] == i.
	parent []int

	// size[i] is the number of elements in i's tree, maintained for roots only.
	size []int

	// count is the number of disjoint sets currently live.
	count int
}

// New returns a DSU of n singleton sets {0}, {1}, ..., {n-1}.
// n == 0 yields a valid empty structure with Count() == 0.
//
// Complexity: O(n) time and memory.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the total number of elements n.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets currently live.
// It starts at n and drops by exactly one per effective Union.
func (d *DSU) Count() int { return d.count }

// Find returns the root of i's set. Every node visited on the walk is
// re-pointed directly at the root (two-pass compression), so later
// queries on the same path are O(1).
//
// Returns ErrOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(i int) (int, error) {
	if i < 0 || i >= len(d.parent) {
		return 0, ErrOutOfRange
	}

	return d.findRoot(i), nil
}

// findRoot is Find without the range check, for internal callers that
// already validated their ids.
func (d *DSU) findRoot(i int) int {
	// First pass: walk up to the root.
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: re-point the whole path at the root.
	for d.parent[i] != root {
		i, d.parent[i] = d.parent[i], root
	}

	return root
}

// Union merges the sets containing i and j. The smaller tree is
// attached under the larger tree's root; when sizes tie, j's root
// attaches under i's root. Returns true iff the two were in different
// sets (and Count therefore dropped by one).
//
// Returns ErrOutOfRange when either id is outside [0, Len()).
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(i, j int) (bool, error) {
	if i < 0 || i >= len(d.parent) || j < 0 || j >= len(d.parent) {
		return false, ErrOutOfRange
	}

	ri, rj := d.findRoot(i), d.findRoot(j)
	if ri == rj {
		// Same set already; self-loops land here too.
		return false, nil
	}

	// Keep ri the larger root; a strict comparison preserves the
	// tie-break (equal sizes leave ri as i's root).
	if d.size[ri] < d.size[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
	d.count--

	return true, nil
}

// Connected reports whether i and j are in the same set.
//
// Returns ErrOutOfRange when either id is outside [0, Len()).
func (d *DSU) Connected(i, j int) (bool, error) {
	if i < 0 || i >= len(d.parent) || j < 0 || j >= len(d.parent) {
		return false, ErrOutOfRange
	}

	return d.findRoot(i) == d.findRoot(j), nil
}

// SizeOf returns the number of elements in the set containing i.
//
// Returns ErrOutOfRange when i is outside [0, Len()).
func (d *DSU) SizeOf(i int) (int, error) {
	if i < 0 || i >= len(d.parent) {
		return 0, ErrOutOfRange
	}

	return d.size[d.findRoot(i)], nil
}

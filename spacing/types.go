package spacing

import "errors"

// ErrBadClusterCount indicates a cluster target outside the valid
// window: k must satisfy 2 <= k < m for m elements. Returned before
// any merging starts.
var ErrBadClusterCount = errors.New("spacing: cluster count k must satisfy 2 <= k < m")

// ErrDisconnected indicates that the edge list ran out while more than
// k clusters remained, so no k-clustering is reachable from the given
// edges.
var ErrDisconnected = errors.New("spacing: edge list exhausted before reaching k clusters")

// Edge is an undirected pair of element labels with an explicit
// distance. Immutable from the engine's point of view: MaxSpacing
// reads edges, never reorders or rewrites the caller's slice.
type Edge struct {
	// A and B are endpoint labels, dense in 0..m-1 or 1..m.
	A, B int

	// Dist is the distance between A and B. Only the ordering of
	// distances matters to the engine; ties keep input order.
	Dist int64
}

// Options configures a MaxSpacing run.
// Use DefaultOptions() as the base and apply Option funcs on top.
type Options struct {
	// Verbose prints every effective merge to stdout while the scan
	// advances: endpoints, distance, clusters remaining. Off by
	// default; intended for inspecting small inputs.
	Verbose bool
}

// Option mutates Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithVerbose returns an Option that enables merge tracing on stdout.
func WithVerbose() Option {
	return func(opts *Options) {
		opts.Verbose = true
	}
}

// DefaultOptions returns the default configuration:
//
//   - Verbose = false (silent scan).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Verbose: false,
	}
}

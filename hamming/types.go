package hamming

import (
	"errors"
	"runtime"
)

// ErrNoVectors indicates an empty input collection; a clustering needs
// at least one element.
var ErrNoVectors = errors.New("hamming: at least one vector is required")

// ErrLengthMismatch indicates bit vectors of different lengths in one
// operation; Hamming distance is defined only for equal lengths.
var ErrLengthMismatch = errors.New("hamming: vectors must share one bit length")

// ErrBadDistance indicates a non-positive target distance or spacing
// threshold; the smallest meaningful value is 1.
var ErrBadDistance = errors.New("hamming: target distance must be at least 1")

// ErrUnknownMethod indicates an enumeration method name that is neither
// MethodBacktrack nor MethodCombin.
var ErrUnknownMethod = errors.New("hamming: unknown enumeration method")

// ErrOptionViolation indicates an invalid option value, e.g. a negative
// worker count.
var ErrOptionViolation = errors.New("hamming: invalid option value")

// ErrBadVector indicates a malformed vector literal passed to
// ParseVector: empty, or containing runes other than '0' and '1'.
var ErrBadVector = errors.New("hamming: vector literals may contain only '0' and '1'")

// MethodBacktrack selects recursive depth-first flip/restore
// enumeration with a forward-only position cursor.
const MethodBacktrack = "backtrack"

// MethodCombin selects lexicographic combination generation
// (gonum stat/combin) over flip positions.
const MethodCombin = "combin"

// Options configures a Clustering. Use DefaultOptions() as the base.
//
// Fields:
//
//	Method  string - MethodBacktrack or MethodCombin; both visit the
//	                 same C(L,d) candidates per origin vector.
//	Workers int    - 1 runs sequentially; n > 1 enumerates origins on a
//	                 fixed pool; 0 resolves to one worker per CPU.
//	Verbose bool   - print every effective merge to stdout.
//
// See: NewClustering, MaxClusters.
type Options struct {
	// Method selects the candidate-generation strategy.
	Method string

	// Workers is the enumeration fan-out. Unions always happen on one
	// goroutine regardless, so results are identical at any width.
	Workers int

	// Verbose prints duplicate collapses and enumeration merges.
	Verbose bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the enumeration Method.
// Allowed values: MethodBacktrack, MethodCombin.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithWorkers returns an Option that sets the enumeration fan-out.
// n == 0 resolves to runtime.NumCPU() at construction; n < 0 is
// rejected with ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.Workers = n
	}
}

// WithVerbose returns an Option that enables merge tracing on stdout.
func WithVerbose() Option {
	return func(opts *Options) {
		opts.Verbose = true
	}
}

// DefaultOptions returns the default configuration:
//
//   - Method  = MethodBacktrack (reference enumeration order)
//   - Workers = 1 (sequential)
//   - Verbose = false (silent)
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method:  MethodBacktrack,
		Workers: 1,
		Verbose: false,
	}
}

// resolve applies Option funcs over the defaults and validates the
// result, expanding Workers == 0 into the CPU count.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Method != MethodBacktrack && o.Method != MethodCombin {
		return o, ErrUnknownMethod
	}
	if o.Workers < 0 {
		return o, ErrOptionViolation
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}

	return o, nil
}

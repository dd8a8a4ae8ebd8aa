// Package dataset loads the plain-text input formats the clustering
// engines consume: explicit weighted edge lists for spacing and packed
// bit-vector matrices for hamming.
//
// Formats
//
//	Edge list (ReadEdgeList / ParseEdgeList):
//
//	  3            header: element count m
//	  1 2 1        rows:   labelA labelB distance
//	  2 3 2
//	  1 3 3
//
//	Labels pass through verbatim; both 0-based and 1-based files work
//	because spacing accepts either dense convention. Distances are
//	int64.
//
//	Bit matrix (ReadBitVectors / ParseBitVectors):
//
//	  4 5              header: vector count M, bits per vector L
//	  0 0 0 0 0        rows:   L space-separated 0/1 tokens
//	  0 0 0 0 1
//	  1 1 1 1 1
//	  1 1 1 1 0
//
// Strictness
//
//	Loaders validate shape, not meaning. Every row must carry exactly
//	the declared field count, every token must parse, and the bit
//	matrix must contain exactly the declared number of rows. Blank
//	lines are skipped anywhere. Semantic checks (label density,
//	cluster targets) belong to the engines downstream.
//
// Errors
//
//	ErrBadHeader and ErrBadRow classify every failure; returned errors
//	wrap the sentinel and name the offending line, so callers branch
//	with errors.Is and log the message as is.
//
// The Parse* variants read from any io.Reader; the Read* helpers open
// a file and delegate.
package dataset

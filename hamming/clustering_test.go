package hamming_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcluster/dsu"
	"github.com/katalvlaran/kcluster/hamming"
)

// parseAll builds a collection from literals.
func parseAll(t *testing.T, literals ...string) []hamming.Vector {
	t.Helper()
	vs := make([]hamming.Vector, len(literals))
	for i, s := range literals {
		vs[i] = mustParse(t, s)
	}

	return vs
}

// randomVectors returns m vectors of the given length drawn from a
// deliberately small pattern space, so duplicates and near pairs occur.
func randomVectors(r *rand.Rand, m, bitLen, entropy int) []hamming.Vector {
	vs := make([]hamming.Vector, m)
	for i := range vs {
		v := hamming.NewVector(bitLen)
		for b := 0; b < entropy && b < bitLen; b++ {
			if r.Intn(2) == 1 {
				v.Flip(b)
			}
		}
		vs[i] = v
	}

	return vs
}

// bruteForceClusters unions every pair at Hamming distance strictly
// below the threshold by direct comparison and returns the component
// count. Quadratic; the oracle the engine must match.
func bruteForceClusters(t *testing.T, vs []hamming.Vector, threshold int) int {
	t.Helper()
	ds := dsu.New(len(vs))
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			d, err := hamming.Distance(vs[i], vs[j])
			require.NoError(t, err)
			if d < threshold {
				_, err = ds.Union(i, j)
				require.NoError(t, err)
			}
		}
	}

	return ds.Count()
}

// TestNewClustering_Validation verifies the construction-time error
// taxonomy: empty input, mixed lengths, bad options.
func TestNewClustering_Validation(t *testing.T) {
	_, err := hamming.NewClustering(nil)
	assert.ErrorIs(t, err, hamming.ErrNoVectors)

	_, err = hamming.NewClustering(parseAll(t, "01", "011"))
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)

	_, err = hamming.NewClustering(parseAll(t, "01"), hamming.WithMethod("bogus"))
	assert.ErrorIs(t, err, hamming.ErrUnknownMethod)

	_, err = hamming.NewClustering(parseAll(t, "01"), hamming.WithWorkers(-1))
	assert.ErrorIs(t, err, hamming.ErrOptionViolation)
}

// TestNewClustering_DuplicateCollapse verifies the build-time merges:
// one duplicated pattern among four elements drops the count by exactly
// one before any enumeration runs.
func TestNewClustering_DuplicateCollapse(t *testing.T) {
	c, err := hamming.NewClustering(parseAll(t, "101", "101", "010", "110"))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Len(), "all elements count, duplicates included")
	assert.Equal(t, 3, c.Distinct(), "the index stores distinct patterns only")
	assert.Equal(t, 3, c.Clusters(), "count drops by exactly 1 per duplicate")

	same, err := c.SameCluster(0, 1)
	assert.NoError(t, err)
	assert.True(t, same, "duplicates share a cluster from the start")

	same, err = c.SameCluster(0, 2)
	assert.NoError(t, err)
	assert.False(t, same, "distinct patterns stay apart until enumeration")
}

// TestMaxClusters_ThreeVectors verifies the smallest end-to-end case:
// {000, 001, 111} at threshold 2 leaves the distance-1 pair together
// and 111 alone.
func TestMaxClusters_ThreeVectors(t *testing.T) {
	k, err := hamming.MaxClusters(parseAll(t, "000", "001", "111"), 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, k)
}

// TestMaxClusters_TwoPairs verifies threshold 2 on two distance-1
// pairs far from each other.
func TestMaxClusters_TwoPairs(t *testing.T) {
	vs := parseAll(t, "00000", "00001", "11111", "11110")
	c, err := hamming.NewClustering(vs)
	require.NoError(t, err)
	require.NoError(t, c.MergeAtDistance(1))

	assert.Equal(t, 2, c.Clusters())
	for _, pair := range [][2]int{{0, 1}, {2, 3}} {
		same, err := c.SameCluster(pair[0], pair[1])
		assert.NoError(t, err)
		assert.True(t, same, "pair %v must merge at distance 1", pair)
	}
	same, err := c.SameCluster(0, 2)
	assert.NoError(t, err)
	assert.False(t, same, "the two pairs are 4 apart and must stay apart")
}

// TestMaxClusters_ThresholdValidation verifies the precondition gate:
// thresholds below 1 fail before any state is built.
func TestMaxClusters_ThresholdValidation(t *testing.T) {
	vs := parseAll(t, "01", "10")
	for _, bad := range []int{0, -1, -100} {
		_, err := hamming.MaxClusters(vs, bad)
		assert.ErrorIs(t, err, hamming.ErrBadDistance, "threshold %d must be rejected", bad)
	}
}

// TestMaxClusters_ThresholdOne verifies that threshold 1 is pure
// deduplication: no enumeration, clusters = distinct patterns.
func TestMaxClusters_ThresholdOne(t *testing.T) {
	k, err := hamming.MaxClusters(parseAll(t, "01", "01", "10", "11", "11"), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, k, "threshold 1 collapses duplicates and nothing else")
}

// TestMaxClusters_DuplicatesReachThroughOwner verifies that an element
// collapsed into its duplicate owner still joins every cluster the
// owner later joins (the index keeps only the owner).
func TestMaxClusters_DuplicatesReachThroughOwner(t *testing.T) {
	vs := parseAll(t, "00", "00", "01")
	c, err := hamming.NewClustering(vs)
	require.NoError(t, err)
	require.NoError(t, c.MergeAtDistance(1))

	assert.Equal(t, 1, c.Clusters())
	same, err := c.SameCluster(1, 2)
	assert.NoError(t, err)
	assert.True(t, same, "the duplicate must ride along with its owner's merges")
}

// TestMaxClusters_MatchesBruteForce cross-checks the enumeration engine
// against quadratic pairwise comparison across a sweep of thresholds,
// under every method and worker configuration.
func TestMaxClusters_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	vs := randomVectors(r, 60, 8, 5)

	configs := []struct {
		name string
		opts []hamming.Option
	}{
		{"backtrack", nil},
		{"combin", []hamming.Option{hamming.WithMethod(hamming.MethodCombin)}},
		{"workers4", []hamming.Option{hamming.WithWorkers(4)}},
		{"workers_auto_combin", []hamming.Option{hamming.WithWorkers(0), hamming.WithMethod(hamming.MethodCombin)}},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			// Thresholds past the bit length exercise the silent no-op
			// distances as well.
			for threshold := 1; threshold <= 10; threshold++ {
				want := bruteForceClusters(t, vs, threshold)
				got, err := hamming.MaxClusters(vs, threshold, tc.opts...)
				assert.NoError(t, err)
				assert.Equal(t, want, got, "threshold %d", threshold)
			}
		})
	}
}

// TestMaxClusters_MonotoneInThreshold verifies that raising the
// threshold can only merge more: the cluster count never grows with T.
func TestMaxClusters_MonotoneInThreshold(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	vs := randomVectors(r, 40, 10, 6)

	prev := len(vs) + 1
	for threshold := 1; threshold <= 11; threshold++ {
		k, err := hamming.MaxClusters(vs, threshold)
		assert.NoError(t, err)
		assert.LessOrEqual(t, k, prev, "threshold %d must not split clusters", threshold)
		prev = k
	}
}

// TestClustering_ZeroLengthVectors verifies the degenerate empty
// pattern: every element is a duplicate of the first.
func TestClustering_ZeroLengthVectors(t *testing.T) {
	vs := []hamming.Vector{hamming.NewVector(0), hamming.NewVector(0), hamming.NewVector(0)}
	c, err := hamming.NewClustering(vs)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Clusters(), "identical empty patterns collapse to one cluster")

	k, err := hamming.MaxClusters(vs, 5)
	assert.NoError(t, err)
	assert.Equal(t, 1, k)
}

// TestClustering_Candidates pins the probe-count arithmetic.
func TestClustering_Candidates(t *testing.T) {
	c, err := hamming.NewClustering(parseAll(t, "00000"))
	require.NoError(t, err)

	assert.Equal(t, 1, c.Candidates(0))
	assert.Equal(t, 5, c.Candidates(1))
	assert.Equal(t, 10, c.Candidates(2))
	assert.Equal(t, 1, c.Candidates(5))
	assert.Zero(t, c.Candidates(6), "more flips than bits leaves no candidates")
	assert.Zero(t, c.Candidates(-1))
}

// TestClustering_CallerSliceDetached verifies that mutating the
// caller's vectors after construction cannot corrupt the index.
func TestClustering_CallerSliceDetached(t *testing.T) {
	vs := parseAll(t, "000", "001")
	c, err := hamming.NewClustering(vs)
	require.NoError(t, err)

	// Vandalize the caller's copy: push the pair 3 apart. Enumeration
	// at distance 1 still merges, because the engine reads its clones.
	vs[0].Flip(0)
	vs[0].Flip(1)

	require.NoError(t, c.MergeAtDistance(1))
	assert.Equal(t, 1, c.Clusters(), "the index must read its own clones, not the caller's slice")
}

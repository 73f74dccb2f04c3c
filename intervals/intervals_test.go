// SPDX-License-Identifier: MIT

package intervals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebarkov/fluxseries/intervals"
	"github.com/ebarkov/fluxseries/synth"
)

// requireTiling asserts the coverage invariant: intervals are sorted,
// non-overlapping, start at 0, end at n-1, and each boundary between two
// consecutive intervals corresponds to exactly one gap.
func requireTiling(t *testing.T, ivs []intervals.Interval, n int) {
	t.Helper()

	require.NotEmpty(t, ivs, "at least one interval for a non-empty series")
	require.Equal(t, 0, ivs[0].Start, "first interval starts at index 0")
	require.Equal(t, n-1, ivs[len(ivs)-1].End, "last interval ends at the last sample")
	for i, iv := range ivs {
		require.LessOrEqual(t, iv.Start, iv.End, "interval %d is well-formed", i)
		if i > 0 {
			require.Greater(t, iv.Start, ivs[i-1].End, "interval %d does not overlap its predecessor", i)
		}
	}
}

// TestFindIntervals_SingleGap reproduces the canonical fixture:
// t = [0,1,2,3,10,11,12] splits into (0,3) and (4,6).
func TestFindIntervals_SingleGap(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 10, 11, 12}
	opts := intervals.DefaultOptions()
	opts.Nominal = 1

	ivs, err := intervals.FindIntervals(ts, opts)
	require.NoError(t, err)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 3}, {Start: 4, End: 6}}, ivs)
	requireTiling(t, ivs, len(ts))
}

// TestFindIntervals_NoGaps verifies the whole vector collapses to one run.
func TestFindIntervals_NoGaps(t *testing.T) {
	ivs, err := intervals.FindIntervals([]float64{0, 1, 2}, intervals.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 2}}, ivs)
}

// TestFindIntervals_SingleSample verifies the trivial (0,0) interval.
func TestFindIntervals_SingleSample(t *testing.T) {
	ivs, err := intervals.FindIntervals([]float64{3.5}, intervals.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 0}}, ivs)
}

// TestFindIntervals_GapCountRelation checks numIntervals == numGaps+1 and
// the coverage invariant on a synthesized multi-gap timeline.
func TestFindIntervals_GapCountRelation(t *testing.T) {
	ts := synth.GappedTimeline(0, 0.25, []int{40, 17, 3, 25}, []int{5, 2, 100})

	opts := intervals.DefaultOptions()
	opts.Nominal = 0.25

	gaps, err := intervals.FindGaps(ts, opts)
	require.NoError(t, err)
	ivs, err := intervals.FindIntervals(ts, opts)
	require.NoError(t, err)

	assert.Len(t, gaps, 3)
	assert.Equal(t, len(gaps)+1, len(ivs), "numIntervals == numGaps + 1")
	requireTiling(t, ivs, len(ts))
	assert.Equal(t, []int{40, 17, 3, 25}, intervals.SampleCounts(ivs), "runs recovered exactly")
}

// TestFindIntervals_Idempotence verifies that re-running the finder on any
// returned run yields exactly one interval — no further splitting.
func TestFindIntervals_Idempotence(t *testing.T) {
	ts := synth.GappedTimeline(10, 1, []int{8, 5, 12}, []int{4, 9})

	opts := intervals.DefaultOptions()
	opts.Nominal = 1

	ivs, err := intervals.FindIntervals(ts, opts)
	require.NoError(t, err)
	require.Len(t, ivs, 3)

	for i, iv := range ivs {
		sub := ts[iv.Start : iv.End+1]
		again, err := intervals.FindIntervals(sub, opts)
		require.NoError(t, err)
		assert.Equal(t, []intervals.Interval{{Start: 0, End: len(sub) - 1}}, again,
			"run %d must not split further", i)
	}
}

// TestFindIntervals_PredicateOverride verifies that a GapInRange option set
// still partitions on AnyGap (a size-filtered gap set cannot tile).
func TestFindIntervals_PredicateOverride(t *testing.T) {
	ts := []float64{0, 1, 2, 10, 11} // one 8-step gap

	opts := intervals.Options{Nominal: 1, Predicate: intervals.GapInRange, MinSteps: 20, MaxSteps: 30}
	ivs, err := intervals.FindIntervals(ts, opts)
	require.NoError(t, err)
	assert.Len(t, ivs, 2, "the 8-step gap splits the series despite the out-of-range size filter")
}

// TestDurations spot-checks the convenience accessor.
func TestDurations(t *testing.T) {
	ts := []float64{0, 1, 2, 3, 10, 11, 12}
	ivs := []intervals.Interval{{Start: 0, End: 3}, {Start: 4, End: 6}}
	assert.Equal(t, []float64{3, 2}, intervals.Durations(ivs, ts))
}

// SPDX-License-Identifier: MIT

package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebarkov/fluxseries/align"
	"github.com/ebarkov/fluxseries/intervals"
	"github.com/ebarkov/fluxseries/synth"
)

// TestSynchronize_RemainderAbsorbed pairs two X runs against one long Y
// run: pair 0 trims Y to X's first run, pair 1 is built from Y's absorbed
// remainder and trimmed to X's second run.
func TestSynchronize_RemainderAbsorbed(t *testing.T) {
	tx := synth.GappedTimeline(0, 1, []int{8, 8}, []int{4}) // times 0..7, 12..19
	ty := synth.Timeline(24, 0, 1)                          // times 0..23
	x := []intervals.Interval{{Start: 0, End: 7}, {Start: 8, End: 15}}
	y := []intervals.Interval{{Start: 0, End: 23}}

	sx, sy, clamped, err := align.Synchronize(tx, ty, x, y)
	require.NoError(t, err)
	assert.Zero(t, clamped, "all targets inside range")
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 7}, {Start: 8, End: 15}}, sx,
		"X drives both pairs and keeps its boundaries")
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 7}, {Start: 12, End: 19}}, sy,
		"Y trimmed to times 0..7, then its remainder trimmed to times 12..19")
}

// TestSynchronize_Cardinality verifies both outputs always hold
// max(len(x), len(y)) intervals, whichever side exhausts first.
func TestSynchronize_Cardinality(t *testing.T) {
	ty := synth.GappedTimeline(0, 1, []int{5, 5, 5}, []int{3, 3}) // three Y runs
	tx := synth.Timeline(25, 0, 1)                                // one X run
	opts := intervals.DefaultOptions()
	opts.Nominal = 1

	y, err := intervals.FindIntervals(ty, opts)
	require.NoError(t, err)
	require.Len(t, y, 3)
	x := []intervals.Interval{{Start: 0, End: 24}}

	sx, sy, _, err := align.Synchronize(tx, ty, x, y)
	require.NoError(t, err)
	assert.Len(t, sx, 3, "X padded with remainder intervals")
	assert.Len(t, sy, 3)

	for k := range sx {
		assert.LessOrEqual(t, sx[k].Start, sx[k].End, "pair %d X well-formed", k)
		assert.LessOrEqual(t, sy[k].Start, sy[k].End, "pair %d Y well-formed", k)
		if k > 0 {
			assert.Greater(t, sx[k].Start, sx[k-1].End, "X remainder starts past the last synced end")
		}
	}
}

// TestSynchronize_TiePrefersEarlier pins the documented tie-break: a target
// exactly between two samples snaps to the earlier one.
func TestSynchronize_TiePrefersEarlier(t *testing.T) {
	tx := []float64{1}
	ty := []float64{0, 2}
	x := []intervals.Interval{{Start: 0, End: 0}}
	y := []intervals.Interval{{Start: 0, End: 1}}

	sx, sy, clamped, err := align.Synchronize(tx, ty, x, y)
	require.NoError(t, err)
	assert.Zero(t, clamped)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 0}}, sx)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 0}}, sy,
		"t=1 is equidistant from 0 and 2; the earlier sample wins")
}

// TestSynchronize_ClampOutOfRange verifies that targets beyond either
// series' range clamp to boundary indices and are counted, not dropped.
func TestSynchronize_ClampOutOfRange(t *testing.T) {
	tx := []float64{100, 101}
	ty := []float64{0, 1, 2}
	x := []intervals.Interval{{Start: 0, End: 1}}
	y := []intervals.Interval{{Start: 0, End: 2}}

	sx, sy, clamped, err := align.Synchronize(tx, ty, x, y)
	require.NoError(t, err)
	assert.Equal(t, 2, clamped, "start snapped forward in Y, end snapped back in X")
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 0}}, sx,
		"X collapses to its first sample: the disjoint ranges leave nothing to trim to")
	assert.Equal(t, []intervals.Interval{{Start: 2, End: 2}}, sy,
		"Y collapses to its last sample")
}

// TestSynchronize_DifferentRates aligns a 1 Hz series against a 4 Hz
// series and checks the follower lands on the closest fast-grid samples.
func TestSynchronize_DifferentRates(t *testing.T) {
	tx := synth.Timeline(10, 2.1, 1)     // 2.1, 3.1, ... 11.1
	ty := synth.Timeline(64, 0, 0.25)    // 0.00, 0.25, ... 15.75
	x := []intervals.Interval{{Start: 0, End: 9}}
	y := []intervals.Interval{{Start: 0, End: 63}}

	sx, sy, clamped, err := align.Synchronize(tx, ty, x, y)
	require.NoError(t, err)
	assert.Zero(t, clamped)
	assert.Equal(t, []intervals.Interval{{Start: 0, End: 9}}, sx, "slow series drives both ends")
	require.Len(t, sy, 1)
	assert.InDelta(t, 2.1, ty[sy[0].Start], 0.126, "Y start within half a fast step of X's start")
	assert.InDelta(t, 11.1, ty[sy[0].End], 0.126, "Y end within half a fast step of X's end")
}

// TestSynchronize_Empty covers the no-intervals and no-samples boundaries.
func TestSynchronize_Empty(t *testing.T) {
	sx, sy, clamped, err := align.Synchronize(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, sx)
	assert.Nil(t, sy)
	assert.Zero(t, clamped)

	// Intervals present but one series has no samples to absorb from.
	_, _, _, err = align.Synchronize([]float64{0, 1}, nil,
		[]intervals.Interval{{Start: 0, End: 1}}, nil)
	assert.ErrorIs(t, err, align.ErrEmptyInput)
}

// SPDX-License-Identifier: MIT

package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ebarkov/fluxseries/series"
	"github.com/ebarkov/fluxseries/synth"
)

// TestTimeline verifies spacing, start offset and the nil guards.
func TestTimeline(t *testing.T) {
	ts := synth.Timeline(4, 10, 0.5)
	assert.Equal(t, []float64{10, 10.5, 11, 11.5}, ts)

	assert.Nil(t, synth.Timeline(0, 0, 1))
	assert.Nil(t, synth.Timeline(4, 0, 0))
}

// TestGappedTimeline verifies run/gap bookkeeping against hand arithmetic.
func TestGappedTimeline(t *testing.T) {
	ts := synth.GappedTimeline(0, 1, []int{3, 2}, []int{4})
	// Run 1: 0,1,2; four missing samples (3,4,5,6); run 2: 7,8.
	assert.Equal(t, []float64{0, 1, 2, 7, 8}, ts)
	assert.True(t, series.Monotonic(ts, true))

	assert.Nil(t, synth.GappedTimeline(0, 1, []int{3, 2}, nil), "missing count mismatch")
	assert.Nil(t, synth.GappedTimeline(0, 1, []int{3, 0}, []int{1}), "empty run")
	assert.Nil(t, synth.GappedTimeline(0, 1, []int{3, 2}, []int{0}), "zero-size gap")
}

// TestBinAlignedSine checks endpoint periodicity and the bin guards.
func TestBinAlignedSine(t *testing.T) {
	y := synth.BinAlignedSine(64, 4, 2)
	require.Len(t, y, 64)
	assert.InDelta(t, 0, y[0], 1e-12, "sine starts at zero phase")
	assert.InDelta(t, y[0], y[32], 1e-9, "bin 4 of 64 repeats every 16 samples")

	assert.Nil(t, synth.BinAlignedSine(64, 0, 1), "DC bin rejected")
	assert.Nil(t, synth.BinAlignedSine(64, 32, 1), "Nyquist bin rejected")
}

// TestChirp verifies determinism and shape.
func TestChirp(t *testing.T) {
	a := synth.Chirp(128, 1, 0.02, 0.25)
	b := synth.Chirp(128, 1, 0.02, 0.25)
	require.Len(t, a, 128)
	assert.Equal(t, a, b, "chirp is deterministic")
	assert.Nil(t, synth.Chirp(128, 1, 0, 0.25))
}

// TestField3 verifies packing and the mismatch guard.
func TestField3(t *testing.T) {
	f := synth.Field3([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	require.NotNil(t, f)
	r, c := f.Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, 4.0, f.At(1, 1))

	assert.Nil(t, synth.Field3([]float64{1}, []float64{1, 2}, []float64{1}))
}

// TestNoisyField3 verifies seeded reproducibility.
func TestNoisyField3(t *testing.T) {
	a := synth.NoisyField3(16, 42, 1.5)
	b := synth.NoisyField3(16, 42, 1.5)
	require.NotNil(t, a)
	assert.True(t, mat.Equal(a, b), "same seed, same noise")
}

// SPDX-License-Identifier: MIT

package synth

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// tau is 2π, precomputed for the phase accumulators below.
const tau = 2.0 * math.Pi

// Timeline returns n uniformly spaced timestamps starting at start with
// spacing nominal. Returns nil when n ≤ 0 or nominal ≤ 0.
func Timeline(n int, start, nominal float64) []float64 {
	if n <= 0 || nominal <= 0 {
		return nil
	}

	t := make([]float64, n)
	for i := range t {
		t[i] = start + float64(i)*nominal
	}

	return t
}

// GappedTimeline builds a timestamp vector made of len(runs) continuous
// runs at spacing nominal, where missing[i] samples are absent between run
// i and run i+1. The resulting vector therefore contains sum(runs) samples
// and len(missing) detectable gaps of known size.
//
// Contract:
//   - nominal > 0, every runs[i] ≥ 1, every missing[i] ≥ 1,
//     len(missing) == len(runs)-1; otherwise nil.
func GappedTimeline(start, nominal float64, runs, missing []int) []float64 {
	if nominal <= 0 || len(runs) == 0 || len(missing) != len(runs)-1 {
		return nil
	}
	total := 0
	for _, r := range runs {
		if r < 1 {
			return nil
		}
		total += r
	}
	for _, m := range missing {
		if m < 1 {
			return nil
		}
	}

	t := make([]float64, 0, total)
	next := start
	for i, r := range runs {
		for j := 0; j < r; j++ {
			t = append(t, next)
			next += nominal
		}
		if i < len(missing) {
			next += float64(missing[i]) * nominal
		}
	}

	return t
}

// Sine returns n samples of amp·sin(τ·f·i), with f in cycles per sample.
// Returns nil when n ≤ 0.
func Sine(n int, amp, f float64) []float64 {
	if n <= 0 {
		return nil
	}

	y := make([]float64, n)
	for i := range y {
		y[i] = amp * math.Sin(tau*f*float64(i))
	}

	return y
}

// BinAlignedSine returns n samples of a sine whose frequency lands exactly
// on FFT bin `bin` of an n-point transform (f = bin/n cycles per sample).
// Bin-aligned tones survive a windowed FFT round trip without leakage,
// which makes them the fixture of choice for calibration sanity checks.
// Returns nil when n ≤ 0 or bin is outside (0, n/2).
func BinAlignedSine(n, bin int, amp float64) []float64 {
	if n <= 0 || bin <= 0 || bin >= n/2 {
		return nil
	}

	return Sine(n, amp, float64(bin)/float64(n))
}

// Chirp returns an n-sample linear frequency sweep from f0 to f1 (cycles
// per sample) at amplitude amp, built with a phase accumulator so the
// waveform stays continuous across the sweep. Returns nil when n ≤ 0 or
// either frequency is not positive.
func Chirp(n int, amp, f0, f1 float64) []float64 {
	if n <= 0 || f0 <= 0 || f1 <= 0 {
		return nil
	}

	y := make([]float64, n)
	theta := 0.0
	for i := range y {
		y[i] = amp * math.Sin(theta)
		fi := f0
		if n > 1 {
			fi = f0 + (f1-f0)*float64(i)/float64(n-1)
		}
		theta += tau * fi
	}

	return y
}

// Field3 packs three equal-length component slices into the row-major N×3
// matrix consumed by the calib package. Returns nil on a length mismatch
// or empty input.
func Field3(x, y, z []float64) *mat.Dense {
	n := len(x)
	if n == 0 || len(y) != n || len(z) != n {
		return nil
	}

	f := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		f.Set(i, 0, x[i])
		f.Set(i, 1, y[i])
		f.Set(i, 2, z[i])
	}

	return f
}

// NoisyField3 returns an N×3 field of seeded Gaussian noise with standard
// deviation sigma — raw-count texture for benchmarks. Returns nil when
// n ≤ 0 or sigma < 0.
func NoisyField3(n int, seed int64, sigma float64) *mat.Dense {
	if n <= 0 || sigma < 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	f := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			f.Set(i, j, rng.NormFloat64()*sigma)
		}
	}

	return f
}

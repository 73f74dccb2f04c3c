// SPDX-License-Identifier: MIT

// Package calib converts raw 3-component magnetometer counts into physical
// units with a windowed-FFT overlap-add pass over each continuous run of
// the input series.
//
// 🚀 How it works
//
//	A sensor's frequency response is captured as a per-axis, per-FFT-bin
//	complex transfer function. Calibration divides each data block's
//	spectrum by those bins, transforms back, and rotates the result from
//	the calibration frame into the sensor's reference frame. Because
//	windowing distorts block edges, blocks slide by a quarter of their
//	length (75% overlap) and only each interior block's flat middle
//	quarter lands in the output:
//
//	  FIRST    — Hamming window, anchored at the run's first sample,
//	             writes the whole block;
//	  INTERIOR — Tukey window (α = 0.75: tapers exactly the outer three
//	             quarters, unit gain over the kept middle), writes its
//	             middle quarter over anything before it;
//	  LAST     — Hamming window, re-anchored so the block ends exactly at
//	             the run's final sample (overlapping its predecessor by
//	             more than 75% if need be), writes only the tail no block
//	             has produced yet.
//
//	Runs shorter than one block cannot be calibrated; they are skipped
//	and reported in the returned Diagnostics, never silently dropped.
//
// ⚙️ Usage:
//
//	import "github.com/ebarkov/fluxseries/calib"
//
//	tf, err := calib.NewTransferFunction(binsX, binsY, binsZ)
//	opts := calib.DefaultOptions()       // BlockLen 512, Amp 1, identity rotation
//	out, diag, err := calib.Calibrate(raw, tf, opts)
//
// With an all-ones transfer function, identity rotation and unit amplitude
// the pass reproduces its input exactly over every interior-kept sample —
// the energy-preservation sanity check in the tests.
//
// FFTs come from gonum.org/v1/gonum/dsp/fourier and window coefficients
// from gonum.org/v1/gonum/dsp/window; rotation matrices are gonum mat
// Dense values, inverted once per Calibrate call.
package calib

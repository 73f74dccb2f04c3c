// SPDX-License-Identifier: MIT

// Package calib: options, diagnostics and sentinel errors.

package calib

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/ebarkov/fluxseries/intervals"
)

var (
	// ErrFieldShape is returned when the input series does not carry
	// exactly three field components.
	ErrFieldShape = errors.New("calib: field must have exactly 3 components")

	// ErrBlockLen is returned when BlockLen is below the minimum of 8 or
	// not divisible by 4 (blocks advance by BlockLen/4).
	ErrBlockLen = errors.New("calib: block length must be ≥ 8 and divisible by 4")

	// ErrBadAmp is returned for a zero amplitude factor, which would
	// destroy the signal rather than scale it.
	ErrBadAmp = errors.New("calib: amplitude factor must be non-zero")

	// ErrBadTukeyAlpha is returned when the interior taper fraction lies
	// outside [0, 1].
	ErrBadTukeyAlpha = errors.New("calib: Tukey alpha must be in [0, 1]")

	// ErrRotationShape is returned when a rotation matrix is not 3×3.
	ErrRotationShape = errors.New("calib: rotation matrix must be 3×3")

	// ErrSingularRotation is returned when the rotation matrix cannot be
	// inverted back into the sensor frame.
	ErrSingularRotation = errors.New("calib: rotation matrix is singular")

	// ErrTransferShape is returned when the three per-axis bin arrays are
	// empty or of differing lengths.
	ErrTransferShape = errors.New("calib: transfer-function axes must be non-empty and equal length")

	// ErrTransferLength is returned when the transfer function does not
	// hold BlockLen/2+1 bins, the one-sided spectrum size of a block.
	ErrTransferLength = errors.New("calib: transfer-function length must be BlockLen/2+1")

	// ErrZeroTransferBin is returned when any transfer bin is exactly
	// zero; calibration divides by each bin.
	ErrZeroTransferBin = errors.New("calib: transfer function contains a zero bin")
)

// Options configures a calibration pass.
//
// Fields:
//   - BlockLen   — FFT block length in samples; ≥ 8 and divisible by 4.
//   - Amp        — scalar amplitude correction applied to raw counts
//     before the spectral pass. Must be non-zero.
//   - Rotation   — 3×3 matrix mapping the sensor frame into the
//     calibration frame; its inverse is applied to calibrated samples to
//     return them to the sensor frame. Nil means identity.
//   - TukeyAlpha — taper fraction of the interior window. The default
//     0.75 leaves exactly the kept middle quarter at unit gain; values
//     below keep it flat too, values above taper into the kept region.
//   - Nominal    — nominal sampling interval forwarded to interval
//     detection; zero derives it from the data.
type Options struct {
	BlockLen   int
	Amp        float64
	Rotation   *mat.Dense
	TukeyAlpha float64
	Nominal    float64
}

// DefaultOptions returns the canonical configuration: 512-sample blocks,
// unit amplitude, identity rotation, α = 0.75.
func DefaultOptions() Options {
	return Options{BlockLen: 512, Amp: 1, TukeyAlpha: 0.75}
}

// validate front-loads every option check so the block loop can run
// without defensive branches.
func (o Options) validate() error {
	if o.BlockLen < 8 || o.BlockLen%4 != 0 {
		return ErrBlockLen
	}
	if o.Amp == 0 {
		return ErrBadAmp
	}
	if o.TukeyAlpha < 0 || o.TukeyAlpha > 1 {
		return ErrBadTukeyAlpha
	}
	if o.Nominal < 0 {
		return intervals.ErrBadNominal
	}

	return nil
}

// SkippedInterval records one continuous run too short to hold a single
// FFT block, left uncalibrated.
type SkippedInterval struct {
	Interval intervals.Interval
	Samples  int
}

// Diagnostics makes every skip decision of a calibration pass observable.
type Diagnostics struct {
	// Intervals is the number of continuous runs examined.
	Intervals int

	// Calibrated is the number of samples written to the output.
	Calibrated int

	// Skipped lists the runs shorter than one block, in order.
	Skipped []SkippedInterval
}

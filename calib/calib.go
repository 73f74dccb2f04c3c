// SPDX-License-Identifier: MIT

package calib

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/mat"

	"github.com/ebarkov/fluxseries/intervals"
	"github.com/ebarkov/fluxseries/series"
)

// Calibrate runs the overlap-add spectral calibration of package doc over
// every continuous run of s, returning the calibrated series, diagnostics
// for any skipped runs, and an error for malformed input.
//
// The output holds the concatenation of all calibrated runs: timestamps
// are carried over unchanged, values are the corrected field in the sensor
// frame. Runs shorter than opts.BlockLen are skipped and recorded; when
// every run is skipped the returned series is nil and Diagnostics explains
// why. The input series is never mutated.
//
// Errors: ErrFieldShape, option sentinels from Options.validate,
// ErrTransferLength, ErrRotationShape, ErrSingularRotation, and the
// interval-detection sentinels.
func Calibrate(s *series.Series, tf *TransferFunction, opts Options) (*series.Series, Diagnostics, error) {
	var diag Diagnostics

	if err := opts.validate(); err != nil {
		return nil, diag, err
	}
	if s.Components() != 3 {
		return nil, diag, ErrFieldShape
	}
	if tf == nil {
		return nil, diag, ErrTransferShape
	}
	if tf.Len() != opts.BlockLen/2+1 {
		return nil, diag, ErrTransferLength
	}

	rinv, err := invertRotation(opts.Rotation)
	if err != nil {
		return nil, diag, err
	}

	iopts := intervals.DefaultOptions()
	iopts.Nominal = opts.Nominal
	runs, err := intervals.FindIntervals(s.Timestamps(), iopts)
	if err != nil {
		return nil, diag, err
	}
	diag.Intervals = len(runs)

	bp := newBlockProcessor(opts, tf, rinv)

	var (
		outT []float64
		outV []float64 // row-major N×3
	)
	for _, run := range runs {
		if run.Count() < opts.BlockLen {
			diag.Skipped = append(diag.Skipped, SkippedInterval{Interval: run, Samples: run.Count()})
			continue
		}

		outT = append(outT, s.Timestamps()[run.Start:run.End+1]...)
		outV = bp.processRun(outV, s, run)
		diag.Calibrated += run.Count()
	}

	if len(outT) == 0 {
		return nil, diag, nil
	}

	out, err := series.New(outT, mat.NewDense(len(outT), 3, outV))
	if err != nil {
		return nil, diag, err
	}

	return out, diag, nil
}

// invertRotation returns the inverse of a 3×3 rotation matrix, or nil for
// a nil (identity) input.
func invertRotation(r *mat.Dense) (*mat.Dense, error) {
	if r == nil {
		return nil, nil
	}
	if rows, cols := r.Dims(); rows != 3 || cols != 3 {
		return nil, ErrRotationShape
	}

	var inv mat.Dense
	if err := inv.Inverse(r); err != nil {
		return nil, ErrSingularRotation
	}

	return &inv, nil
}

// blockProcessor owns the reusable FFT plan, window coefficient tables and
// scratch buffers for one calibration pass.
type blockProcessor struct {
	opts Options
	tf   *TransferFunction
	rinv *mat.Dense

	fft     *fourier.FFT
	hamming []float64 // FIRST/LAST window coefficients
	tukey   []float64 // INTERIOR window coefficients

	re     []float64      // windowed block, one axis
	spec   []complex128   // one-sided spectrum scratch
	axes   [3][]float64   // calibrated block, per axis
	keepLo int            // first kept index of an interior block: 3L/8
}

func newBlockProcessor(opts Options, tf *TransferFunction, rinv *mat.Dense) *blockProcessor {
	l := opts.BlockLen

	// gonum's window functions transform a sequence in place; applying
	// them to all-ones yields the coefficient tables.
	ham := make([]float64, l)
	tuk := make([]float64, l)
	for i := 0; i < l; i++ {
		ham[i], tuk[i] = 1, 1
	}
	window.Hamming(ham)
	window.Tukey{Alpha: opts.TukeyAlpha}.Transform(tuk)

	bp := &blockProcessor{
		opts:    opts,
		tf:      tf,
		rinv:    rinv,
		fft:     fourier.NewFFT(l),
		hamming: ham,
		tukey:   tuk,
		re:      make([]float64, l),
		spec:    make([]complex128, l/2+1),
		keepLo:  3 * l / 8,
	}
	for a := range bp.axes {
		bp.axes[a] = make([]float64, l)
	}

	return bp
}

// processRun walks the FIRST → INTERIOR… → LAST block states over one
// continuous run and appends the run's calibrated samples to dst.
func (bp *blockProcessor) processRun(dst []float64, s *series.Series, run intervals.Interval) []float64 {
	l := bp.opts.BlockLen
	q := l / 4
	a, b := run.Start, run.End

	// Run-local output buffer: blocks overwrite freely, the buffer is
	// appended to dst once, fully populated.
	buf := make([]float64, run.Count()*3)

	// FIRST: anchored at the run start, whole block written.
	bp.block(buf, s, a, a, bp.hamming, a, a+l-1)
	covered := a + l - 1

	// INTERIOR: advance by a quarter block, write the flat middle quarter
	// over whatever the previous blocks left there.
	last := b - l + 1
	for sb := a + q; sb < last; sb += q {
		lo := sb + bp.keepLo
		hi := lo + q - 1
		bp.block(buf, s, a, sb, bp.tukey, lo, hi)
		if hi > covered {
			covered = hi
		}
	}

	// LAST: re-anchored to end exactly at the run's final sample; writes
	// only the tail not yet produced. Absent when one block spans the run.
	if last > a {
		bp.block(buf, s, a, last, bp.hamming, covered+1, b)
	}

	return append(dst, buf...)
}

// block calibrates the BlockLen samples starting at absolute index start
// and writes absolute sample range [keepLo, keepHi] into buf (which is
// indexed relative to the run start a).
func (bp *blockProcessor) block(buf []float64, s *series.Series, a, start int, win []float64, keepLo, keepHi int) {
	l := bp.opts.BlockLen
	v := s.Values()

	for axis := 0; axis < 3; axis++ {
		for i := 0; i < l; i++ {
			bp.re[i] = v.At(start+i, axis) * bp.opts.Amp * win[i]
		}
		bp.fft.Coefficients(bp.spec, bp.re)

		bins := bp.tf.Bins(axis)
		for k := range bp.spec {
			bp.spec[k] /= bins[k]
		}

		bp.fft.Sequence(bp.axes[axis], bp.spec)
		// gonum's FFT round trip scales by the sequence length.
		for i := 0; i < l; i++ {
			bp.axes[axis][i] /= float64(l)
		}
	}

	for idx := keepLo; idx <= keepHi; idx++ {
		rel := idx - start
		x, y, z := bp.axes[0][rel], bp.axes[1][rel], bp.axes[2][rel]

		if bp.rinv != nil {
			// Samples are rows: vᵀ · R⁻¹ maps the calibration frame back
			// into the sensor frame.
			x, y, z =
				x*bp.rinv.At(0, 0)+y*bp.rinv.At(1, 0)+z*bp.rinv.At(2, 0),
				x*bp.rinv.At(0, 1)+y*bp.rinv.At(1, 1)+z*bp.rinv.At(2, 1),
				x*bp.rinv.At(0, 2)+y*bp.rinv.At(1, 2)+z*bp.rinv.At(2, 2)
		}

		o := (idx - a) * 3
		buf[o], buf[o+1], buf[o+2] = x, y, z
	}
}

// SPDX-License-Identifier: MIT

package calib

// TransferFunction holds one complex correction factor per FFT bin per
// axis, indexed to the one-sided spectrum of a calibration block
// (BlockLen/2+1 bins). Immutable after construction.
type TransferFunction struct {
	bins [3][]complex128
}

// NewTransferFunction validates and wraps the three per-axis bin arrays.
// The arrays must be non-empty, of equal length, and free of zero bins
// (calibration divides each spectrum by these values). The slices are not
// copied; callers must not mutate them afterwards.
func NewTransferFunction(x, y, z []complex128) (*TransferFunction, error) {
	n := len(x)
	if n == 0 || len(y) != n || len(z) != n {
		return nil, ErrTransferShape
	}
	for _, axis := range [3][]complex128{x, y, z} {
		for _, b := range axis {
			if b == 0 {
				return nil, ErrZeroTransferBin
			}
		}
	}

	return &TransferFunction{bins: [3][]complex128{x, y, z}}, nil
}

// Ones returns the no-op transfer function: nBins unit bins per axis.
// Useful as a pass-through in tests and when only amplitude and rotation
// corrections are wanted.
func Ones(nBins int) *TransferFunction {
	var bins [3][]complex128
	for a := range bins {
		bins[a] = make([]complex128, nBins)
		for k := range bins[a] {
			bins[a][k] = 1
		}
	}

	return &TransferFunction{bins: bins}
}

// Len returns the number of bins per axis.
func (tf *TransferFunction) Len() int { return len(tf.bins[0]) }

// Bins returns the bin array for axis a (0, 1, 2). Read-only by
// convention.
func (tf *TransferFunction) Bins(a int) []complex128 { return tf.bins[a] }

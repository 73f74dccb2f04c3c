// SPDX-License-Identifier: MIT

package series

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Series is an immutable pairing of a strictly increasing timestamp vector
// with an N×C value matrix (row i holds the field sample taken at t[i]).
//
// The zero value is not usable; construct via New or NewScalar.
type Series struct {
	t []float64
	v *mat.Dense
}

// New validates and wraps a timestamp vector and its N×C value matrix.
//
// Contract:
//   - len(t) ≥ 1 and v non-nil, else ErrEmptySeries.
//   - v must have exactly len(t) rows, else ErrLengthMismatch.
//   - t must be strictly increasing, else ErrNonMonotonic.
//
// The inputs are NOT copied: the caller hands over ownership and must not
// mutate t or v afterwards. Complexity: O(n).
func New(t []float64, v *mat.Dense) (*Series, error) {
	if len(t) == 0 || v == nil {
		return nil, ErrEmptySeries
	}
	if rows, _ := v.Dims(); rows != len(t) {
		return nil, ErrLengthMismatch
	}
	if !Monotonic(t, true) {
		return nil, ErrNonMonotonic
	}

	return &Series{t: t, v: v}, nil
}

// NewScalar wraps a timestamp vector with a single-component value vector,
// stored as an N×1 matrix. Same contract as New.
func NewScalar(t, v []float64) (*Series, error) {
	if len(v) != len(t) {
		return nil, ErrLengthMismatch
	}
	if len(t) == 0 {
		return nil, ErrEmptySeries
	}

	return New(t, mat.NewDense(len(t), 1, v))
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.t) }

// Components returns the number of field components per sample.
func (s *Series) Components() int {
	_, c := s.v.Dims()
	return c
}

// Timestamps returns the underlying timestamp vector. Read-only by
// convention; callers must not mutate it.
func (s *Series) Timestamps() []float64 { return s.t }

// Values returns the underlying N×C value matrix. Read-only by convention.
func (s *Series) Values() *mat.Dense { return s.v }

// NominalInterval estimates the nominal sampling interval of the series as
// the median of consecutive timestamp differences. A single-sample series
// has no differences and yields 0; callers treat such a series as one
// trivial interval.
func (s *Series) NominalInterval() float64 { return MedianInterval(s.t) }

// MedianInterval returns the median of consecutive differences of t, or 0
// when len(t) < 2.
//
// The empirical median is taken over a sorted copy of the diffs; with any
// realistic stretch of uniform sampling the diffs are dominated by the
// nominal spacing, so the quantile kind does not matter in practice.
// Complexity: O(n log n).
func MedianInterval(t []float64) float64 {
	if len(t) < 2 {
		return 0
	}

	d := make([]float64, len(t)-1)
	floats.SubTo(d, t[1:], t[:len(t)-1])
	sort.Float64s(d)

	return stat.Quantile(0.5, stat.Empirical, d, nil)
}

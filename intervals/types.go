// SPDX-License-Identifier: MIT

// Package intervals: domain types, options and sentinel errors.

package intervals

import "errors"

var (
	// ErrEmptyInput is returned when the timestamp vector has no samples.
	ErrEmptyInput = errors.New("intervals: empty timestamp vector")

	// ErrNonMonotonic is returned when timestamps are not strictly
	// increasing; gap arithmetic is undefined on unordered time.
	ErrNonMonotonic = errors.New("intervals: timestamps not strictly increasing")

	// ErrBadNominal is returned when a caller-supplied nominal sampling
	// interval is negative. Zero means "derive from the data".
	ErrBadNominal = errors.New("intervals: negative nominal interval")

	// ErrBadPredicateRange is returned for GapInRange when MaxSteps does
	// not exceed MinSteps, or either bound is not positive.
	ErrBadPredicateRange = errors.New("intervals: invalid GapInRange bounds")
)

// Gap marks one detected discontinuity: Before/After are the indices of the
// last sample before and first sample after the missing stretch (always
// consecutive, After == Before+1), and Size is the implied number of missing
// samples, round((t[After]-t[Before])/nominal) - 1.
//
// Size 0 can occur under GapInRange with MinSteps ≤ 1 — a rounding-noise
// false positive. It is reported as-is, never filtered here; callers that
// care must tolerate it.
type Gap struct {
	Before int
	After  int
	Size   int
}

// Interval is a maximal continuous run of samples, inclusive on both ends.
type Interval struct {
	Start int
	End   int
}

// Count returns the number of samples in the interval.
func (iv Interval) Count() int { return iv.End - iv.Start + 1 }

// Duration returns t[End] - t[Start] for the given timestamp vector.
// The interval must lie within t; out-of-range indices are a programmer
// error and will panic via the slice bounds check.
func (iv Interval) Duration(t []float64) float64 { return t[iv.End] - t[iv.Start] }

// Predicate selects how a rounded step count is classified as a gap.
type Predicate int

const (
	// AnyGap flags every step spanning strictly more than one nominal
	// interval. This is the predicate interval partitioning is built on.
	AnyGap Predicate = iota

	// GapInRange flags steps spanning at least MinSteps and strictly fewer
	// than MaxSteps nominal intervals — a half-open [MinSteps, MaxSteps)
	// size filter for isolating gaps of a particular magnitude.
	GapInRange
)

// Options configures gap detection.
//
// Fields:
//   - Nominal   — nominal sampling interval in the units of t. Zero (the
//     default) derives it as the median of consecutive differences.
//   - Predicate — AnyGap or GapInRange.
//   - MinSteps, MaxSteps — bounds for GapInRange, in units of nominal
//     intervals; ignored under AnyGap.
type Options struct {
	Nominal   float64
	Predicate Predicate
	MinSteps  float64
	MaxSteps  float64
}

// DefaultOptions returns the canonical configuration: AnyGap with the
// nominal interval derived from the data.
func DefaultOptions() Options {
	return Options{Predicate: AnyGap}
}

// validate rejects option combinations with no sensible interpretation.
func (o Options) validate() error {
	if o.Nominal < 0 {
		return ErrBadNominal
	}
	if o.Predicate == GapInRange {
		if o.MinSteps <= 0 || o.MaxSteps <= 0 || o.MaxSteps <= o.MinSteps {
			return ErrBadPredicateRange
		}
	}

	return nil
}

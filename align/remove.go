// SPDX-License-Identifier: MIT

package align

import (
	"sort"

	"github.com/ebarkov/fluxseries/intervals"
	"github.com/ebarkov/fluxseries/series"
)

// Remove returns the subsequence of x whose intervals temporally overlap at
// least one interval of y. Boundary times are read from the original
// timestamp vectors tx, ty at the original interval indices; neither input
// slice is mutated.
//
// The overlap test is the defensive one: interval X survives iff some Y
// interval ends after X starts AND some Y interval starts before X ends AND
// the first such Y interval does not lie past the last such one (X sitting
// strictly inside a Y dropout fails this third clause). Boundary touching —
// X starting exactly where a Y interval ends — counts as non-overlap: a
// shared instant holds no mergeable stretch.
//
// For symmetric pruning call twice, feeding the pruned X back in:
//
//	px, _ := align.Remove(x, y, tx, ty)
//	py, _ := align.Remove(y, px, ty, tx)
//
// Errors: ErrEmptyInput, ErrNonMonotonic, ErrBadInterval (see validate).
// An empty y prunes everything. Complexity: O(Ky + Kx·log Ky).
func Remove(x, y []intervals.Interval, tx, ty []float64) ([]intervals.Interval, error) {
	if err := validateIntervals(x, tx); err != nil {
		return nil, err
	}
	if err := validateIntervals(y, ty); err != nil {
		return nil, err
	}

	kept := make([]intervals.Interval, 0, len(x))
	if len(y) == 0 {
		return kept, nil
	}

	// Y intervals are sorted and disjoint, so both their start times and
	// their end times are increasing; binary search applies to each.
	yStarts := make([]float64, len(y))
	yEnds := make([]float64, len(y))
	for j, iv := range y {
		yStarts[j] = ty[iv.Start]
		yEnds[j] = ty[iv.End]
	}

	// Single forward pass building a keep decision per original index;
	// the pruned sequence is materialized once, leaving x untouched.
	for _, iv := range x {
		xs, xe := tx[iv.Start], tx[iv.End]

		// First Y interval ending after X starts.
		begin := sort.SearchFloat64s(yEnds, xs)
		if begin < len(yEnds) && yEnds[begin] == xs {
			begin++ // strict: an end touching X's start is not overlap
		}
		// Last Y interval starting before X ends.
		end := sort.SearchFloat64s(yStarts, xe) - 1

		if begin < len(y) && end >= 0 && begin <= end {
			kept = append(kept, iv)
		}
	}

	return kept, nil
}

// validateIntervals rejects interval lists that the alignment arithmetic
// cannot safely index: inverted or out-of-range bounds, unordered or
// overlapping entries, or a non-empty list over an empty or unordered
// timestamp vector.
func validateIntervals(ivs []intervals.Interval, t []float64) error {
	if len(ivs) == 0 {
		return nil
	}
	if len(t) == 0 {
		return ErrEmptyInput
	}
	if !series.Monotonic(t, true) {
		return ErrNonMonotonic
	}

	prevEnd := -1
	for _, iv := range ivs {
		if iv.Start < 0 || iv.End < iv.Start || iv.End >= len(t) || iv.Start <= prevEnd {
			return ErrBadInterval
		}
		prevEnd = iv.End
	}

	return nil
}

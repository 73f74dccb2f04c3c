// SPDX-License-Identifier: MIT

package intervals

import (
	"math"

	"github.com/ebarkov/fluxseries/series"
)

// FindGaps scans a strictly increasing timestamp vector for sampling
// discontinuities.
//
// Each consecutive step t[i+1]-t[i] is rounded to a whole number of nominal
// sampling intervals; steps matching opts.Predicate become gaps. The
// returned slice is ordered by position and may be empty (a fully
// continuous series); it is never nil on success for a gapped series.
//
// Errors:
//   - ErrEmptyInput    — len(t) == 0.
//   - ErrNonMonotonic  — t not strictly increasing.
//   - ErrBadNominal / ErrBadPredicateRange — malformed Options.
//
// A single-sample vector has no steps and yields zero gaps.
// Complexity: O(n), plus O(n log n) when the nominal interval is derived.
func FindGaps(t []float64, opts Options) ([]Gap, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, ErrEmptyInput
	}
	if !series.Monotonic(t, true) {
		return nil, ErrNonMonotonic
	}
	if len(t) == 1 {
		return nil, nil
	}

	nominal := opts.Nominal
	if nominal == 0 {
		nominal = series.MedianInterval(t)
	}

	var gaps []Gap
	for i := 0; i < len(t)-1; i++ {
		steps := math.Round((t[i+1] - t[i]) / nominal)
		if !opts.matches(steps) {
			continue
		}
		gaps = append(gaps, Gap{
			Before: i,
			After:  i + 1,
			Size:   int(steps) - 1,
		})
	}

	return gaps, nil
}

// matches applies the configured gap predicate to a rounded step count.
// AnyGap uses a strict "more than one interval" test; GapInRange uses the
// half-open [MinSteps, MaxSteps) size filter.
func (o Options) matches(steps float64) bool {
	if o.Predicate == GapInRange {
		return steps >= o.MinSteps && steps < o.MaxSteps
	}

	return steps > 1
}

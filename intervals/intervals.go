// SPDX-License-Identifier: MIT

package intervals

// FindIntervals partitions a strictly increasing timestamp vector into its
// maximal continuous runs: the stretches between AnyGap discontinuities.
//
// For K detected gaps the result holds K+1 intervals: interval 0 starts at
// index 0; interval k (k ≥ 1) starts at gap[k-1].After; interval k (k < K)
// ends at gap[k].Before; the last interval ends at len(t)-1. With zero gaps
// the whole vector is one interval, and a single-sample vector yields the
// trivial interval (0, 0).
//
// opts.Predicate is ignored: partitioning is always driven by AnyGap, since
// a size-filtered gap set would not tile the index range. Nominal is
// honored as in FindGaps.
//
// Errors are those of FindGaps. Complexity: O(n).
func FindIntervals(t []float64, opts Options) ([]Interval, error) {
	opts.Predicate = AnyGap

	gaps, err := FindGaps(t, opts)
	if err != nil {
		return nil, err
	}

	ivs := make([]Interval, 0, len(gaps)+1)
	start := 0
	for _, g := range gaps {
		ivs = append(ivs, Interval{Start: start, End: g.Before})
		start = g.After
	}
	ivs = append(ivs, Interval{Start: start, End: len(t) - 1})

	return ivs, nil
}

// SampleCounts returns the per-interval sample counts, in order. Used by
// calibration diagnostics to report how much data each skipped run held.
func SampleCounts(ivs []Interval) []int {
	counts := make([]int, len(ivs))
	for i, iv := range ivs {
		counts[i] = iv.Count()
	}

	return counts
}

// Durations returns the per-interval time spans t[End]-t[Start], in order.
func Durations(ivs []Interval, t []float64) []float64 {
	d := make([]float64, len(ivs))
	for i, iv := range ivs {
		d[i] = iv.Duration(t)
	}

	return d
}

// SPDX-License-Identifier: MIT

package align

import (
	"sort"

	"github.com/ebarkov/fluxseries/intervals"
	"github.com/ebarkov/fluxseries/series"
)

// Synchronize walks the interval lists of two series in lockstep and snaps
// each pair's boundaries to the closest cross-series match.
//
// For pair k, the series that starts later drives the start boundary and
// the series that ends earlier drives the end boundary; the other series'
// boundary is moved to its nearest sample (see nearestIndex). When one
// series runs out of intervals before the other, its remaining samples —
// from one past its last synchronized end through its final sample — are
// absorbed into a trailing interval so both outputs always hold
// max(len(x), len(y)) entries.
//
// clamped counts boundary lookups whose target time lay outside the other
// series' range; those snap to the first/last index rather than failing.
//
// Errors: ErrEmptyInput, ErrNonMonotonic, ErrBadInterval.
// Complexity: O(max(Kx,Ky)·log max(nx,ny)).
func Synchronize(tx, ty []float64, x, y []intervals.Interval) (sx, sy []intervals.Interval, clamped int, err error) {
	if err = validateIntervals(x, tx); err != nil {
		return nil, nil, 0, err
	}
	if err = validateIntervals(y, ty); err != nil {
		return nil, nil, 0, err
	}

	n := max(len(x), len(y))
	if n == 0 {
		return nil, nil, 0, nil
	}
	// Absorbing the remainder of an exhausted series requires that series
	// to have samples at all.
	if len(tx) == 0 || len(ty) == 0 {
		return nil, nil, 0, ErrEmptyInput
	}

	sx = make([]intervals.Interval, 0, n)
	sy = make([]intervals.Interval, 0, n)

	lastX, lastY := -1, -1
	for k := 0; k < n; k++ {
		cx := pairSource(x, k, lastX, len(tx))
		cy := pairSource(y, k, lastY, len(ty))

		// Start boundary: the later start drives, the other follows.
		var cl int
		if tx[cx.Start] >= ty[cy.Start] {
			cy.Start, cl = nearestIndex(ty, tx[cx.Start])
		} else {
			cx.Start, cl = nearestIndex(tx, ty[cy.Start])
		}
		clamped += cl

		// End boundary: the earlier end drives.
		if tx[cx.End] <= ty[cy.End] {
			cy.End, cl = nearestIndex(ty, tx[cx.End])
		} else {
			cx.End, cl = nearestIndex(tx, ty[cy.End])
		}
		clamped += cl

		// A barely-overlapping pair can snap a boundary past its partner;
		// collapse to the driving sample rather than emit an inverted run.
		if cx.End < cx.Start {
			cx.End = cx.Start
		}
		if cy.End < cy.Start {
			cy.End = cy.Start
		}

		sx = append(sx, cx)
		sy = append(sy, cy)
		lastX, lastY = cx.End, cy.End
	}

	return sx, sy, clamped, nil
}

// pairSource yields pair k's un-synchronized interval: the k-th original
// interval while one exists, otherwise the remainder of the series — one
// past the last synchronized end through the final sample (collapsing to
// the final sample when nothing remains).
func pairSource(ivs []intervals.Interval, k, lastEnd, n int) intervals.Interval {
	if k < len(ivs) {
		return ivs[k]
	}

	start := series.Clamp(lastEnd+1, 0, n-1)

	return intervals.Interval{Start: start, End: n - 1}
}

// nearestIndex locates the sample of t closest in time to target.
//
// Policy (documented, deliberate):
//   - exact distance ties prefer the earlier sample;
//   - a target outside t's range clamps to index 0 or len(t)-1 and is
//     reported via the second return (1 when clamped, else 0).
//
// t must be non-empty and strictly increasing (enforced by the callers'
// validation). Complexity: O(log n).
func nearestIndex(t []float64, target float64) (int, int) {
	j := sort.SearchFloat64s(t, target)

	switch {
	case j == len(t):
		return len(t) - 1, 1 // past the end: clamp high
	case j == 0:
		if t[0] > target {
			return 0, 1 // before the start: clamp low
		}
		return 0, 0 // exact hit on the first sample
	}

	if target-t[j-1] <= t[j]-target {
		return j - 1, 0 // closer, or an exact tie → earlier sample
	}

	return j, 0
}

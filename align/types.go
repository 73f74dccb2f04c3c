// SPDX-License-Identifier: MIT

// Package align: options, result types and sentinel errors.

package align

import (
	"errors"

	"github.com/ebarkov/fluxseries/intervals"
)

var (
	// ErrEmptyInput is returned when an interval list is non-empty but its
	// timestamp vector is empty.
	ErrEmptyInput = errors.New("align: empty timestamp vector")

	// ErrNonMonotonic is returned when a timestamp vector is not strictly
	// increasing; nearest-sample lookups rely on sorted time.
	ErrNonMonotonic = errors.New("align: timestamps not strictly increasing")

	// ErrBadInterval is returned when an interval list is malformed:
	// unordered, overlapping, inverted, or out of the timestamp range.
	ErrBadInterval = errors.New("align: malformed interval list")
)

// Options configures Align. The two operations are independent and
// composable; with both false Align degenerates to plain interval
// detection on each series.
//
// Fields:
//   - Remove   — prune intervals with no temporal overlap in the other series.
//   - Sync     — snap surviving boundary indices to the nearest cross-series match.
//   - NominalX, NominalY — nominal sampling intervals forwarded to interval
//     detection; zero derives them from the data.
type Options struct {
	Remove   bool
	Sync     bool
	NominalX float64
	NominalY float64
}

// DefaultOptions enables both operations with derived nominal intervals.
func DefaultOptions() Options {
	return Options{Remove: true, Sync: true}
}

// Diagnostics reports every discard and clamp decision taken during Align,
// so callers can assert on (or log) what was thrown away.
type Diagnostics struct {
	// RemovedX / RemovedY count intervals pruned from each series.
	RemovedX int
	RemovedY int

	// ClampedMatches counts nearest-sample lookups whose target time fell
	// outside the other series' range and was clamped to a boundary index.
	ClampedMatches int
}

// Result carries the aligned interval sets. After Remove, every interval
// in X overlaps at least one interval in Y and vice versa; after Sync,
// len(X) == len(Y) and pairs correspond by position.
type Result struct {
	X, Y        []intervals.Interval
	Diagnostics Diagnostics
}

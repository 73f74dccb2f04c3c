// SPDX-License-Identifier: MIT

// Package series: sentinel error set. All constructors and methods return
// these sentinels; tests match them via errors.Is. No panics on user input.

package series

import "errors"

var (
	// ErrEmptySeries is returned when a series is constructed with zero
	// samples or a nil value matrix.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrLengthMismatch is returned when len(timestamps) differs from the
	// number of value rows.
	ErrLengthMismatch = errors.New("series: timestamp/value length mismatch")

	// ErrNonMonotonic is returned when timestamps are not strictly increasing.
	// Gap and interval arithmetic is undefined on unordered time, so the
	// violation is rejected at the boundary rather than detected mid-loop.
	ErrNonMonotonic = errors.New("series: timestamps not strictly increasing")
)

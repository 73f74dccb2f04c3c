// SPDX-License-Identifier: MIT

// Package series defines the sample-series container shared by the rest of
// fluxseries, plus nominal-sampling-interval estimation.
//
// A Series pairs a strictly increasing timestamp vector (seconds, arbitrary
// epoch) with an N×C value matrix — one row per sample, one column per field
// component (C is typically 3 for a vector magnetometer). The shape is fixed
// at construction: readers convert whatever orientation they carry into
// row-major N×C once, at the API boundary, so downstream code never branches
// on vector orientation.
//
// ⚙️ Usage:
//
//	import "github.com/ebarkov/fluxseries/series"
//
//	s, err := series.New(t, field)      // validate once, share everywhere
//	dt := s.NominalInterval()           // median of consecutive timestamp diffs
//
// All functions are deterministic and side-effect free. Malformed input is
// rejected with the package sentinels (ErrEmptySeries, ErrLengthMismatch,
// ErrNonMonotonic); nothing in this package panics on user data.
package series

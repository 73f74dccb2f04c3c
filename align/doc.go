// SPDX-License-Identifier: MIT

// Package align prunes and synchronizes continuous-interval sets across two
// independently-sampled time series.
//
// 🚀 Why align?
//
//	Two instruments on the same spacecraft — say a fluxgate sampled at
//	16 Hz and a search-coil at 32 Hz — drop out at different moments.
//	Before their records can be spliced, each series is partitioned into
//	continuous runs (package intervals), and then:
//	  • Remove discards runs in one series that fall entirely inside a
//	    dropout of the other — no overlap means nothing to merge.
//	  • Synchronize trims the surviving run boundaries so each pair of
//	    runs starts and ends on the nearest achievable samples across the
//	    two grids: the later start and the earlier end drive, the other
//	    series follows.
//
// ✨ Guarantees (all covered by tests):
//   - Remove never reorders and never grows: its output is a subsequence
//     of its input, and inputs are never mutated (a keep-mask is built in
//     one pass and materialized once).
//   - Synchronize always returns equally many X and Y intervals —
//     max(len(x), len(y)) — absorbing leftover samples of the longer
//     series into its final interval.
//   - Nearest-sample matching clamps to the first/last index when the
//     target time lies outside the other series' range, and prefers the
//     earlier sample on exact distance ties. Every clamp is counted and
//     reported, never silent.
//
// ⚙️ Usage:
//
//	import "github.com/ebarkov/fluxseries/align"
//
//	opts := align.DefaultOptions()          // Remove and Sync both on
//	res, err := align.Align(fgm, scm, opts) // two *series.Series
//	// res.X and res.Y now pair up one-to-one for splicing.
//
// Remove and Synchronize are also exported directly for callers that
// manage interval sets themselves.
//
// Complexity: Remove is O(Kx·log Ky); Synchronize is O(K·log n) where K is
// the output interval count. Both are deterministic and side-effect free.
package align

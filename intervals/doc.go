// SPDX-License-Identifier: MIT

// Package intervals locates timing gaps in an evenly-sampled timestamp
// vector and partitions the vector into maximal continuous runs.
//
// 🚀 What is a gap?
//
//	Telemetry downlinks drop packets. In an otherwise uniform series the
//	missing samples show up as consecutive timestamp differences spanning
//	more than one nominal sampling interval. FindGaps rounds each step to
//	a whole number of nominal intervals and flags the steps that exceed
//	the configured predicate; FindIntervals turns the K flagged gaps into
//	the K+1 continuous runs between them.
//
// ✨ Key guarantees (all covered by tests):
//   - coverage: the returned intervals tile [0, len(t)-1] exactly, in
//     order, with no overlap — the first starts at 0, the last ends at
//     len(t)-1, and consecutive intervals are separated by exactly one gap
//   - len(intervals) == len(gaps) + 1, always
//   - idempotence: re-partitioning any returned run yields one interval
//   - a single-sample series yields zero gaps and one trivial interval
//
// ⚙️ Usage:
//
//	import "github.com/ebarkov/fluxseries/intervals"
//
//	opts := intervals.DefaultOptions()  // AnyGap, nominal derived via median
//	gaps, err := intervals.FindGaps(t, opts)
//	runs, err := intervals.FindIntervals(t, opts)
//
// Two gap predicates are provided: AnyGap (any step spanning more than one
// nominal interval) and GapInRange (steps spanning [MinSteps, MaxSteps)
// nominal intervals, for hunting gaps of a particular size).
//
// Complexity: O(n) over the input, plus O(n log n) once when the nominal
// interval must be derived. Both entry points are pure functions.
package intervals

// SPDX-License-Identifier: MIT

// Package series: small generic helpers over ordered values, shared by the
// interval and alignment packages.

package series

import "golang.org/x/exp/constraints"

// Monotonic reports whether xs is non-decreasing (strict=false) or strictly
// increasing (strict=true). An empty or single-element slice is monotonic.
// Complexity: O(n).
func Monotonic[T constraints.Ordered](xs []T, strict bool) bool {
	for i := 1; i < len(xs); i++ {
		if strict && xs[i] <= xs[i-1] {
			return false
		}
		if !strict && xs[i] < xs[i-1] {
			return false
		}
	}

	return true
}

// Clamp limits v to the inclusive range [lo, hi]. lo must not exceed hi;
// that is a programmer error, not user input, and is not checked here.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// SPDX-License-Identifier: MIT

package align

import (
	"github.com/ebarkov/fluxseries/intervals"
	"github.com/ebarkov/fluxseries/series"
)

// Align runs the full dual-series pipeline: partition both series into
// continuous intervals, prune intervals with no cross-series overlap
// (opts.Remove), then snap the survivors' boundaries to the nearest
// cross-series samples (opts.Sync).
//
// Pruning is applied to X against Y first, then to Y against the
// already-pruned X, with boundary times always read from the original
// timestamp vectors. Diagnostics record how many intervals each side lost
// and how many boundary matches had to clamp.
//
// Errors come from interval detection (malformed series or options); the
// alignment stages themselves cannot fail on detector output.
func Align(sx, sy *series.Series, opts Options) (Result, error) {
	var res Result

	ox := intervals.DefaultOptions()
	ox.Nominal = opts.NominalX
	ivx, err := intervals.FindIntervals(sx.Timestamps(), ox)
	if err != nil {
		return res, err
	}

	oy := intervals.DefaultOptions()
	oy.Nominal = opts.NominalY
	ivy, err := intervals.FindIntervals(sy.Timestamps(), oy)
	if err != nil {
		return res, err
	}

	tx, ty := sx.Timestamps(), sy.Timestamps()

	if opts.Remove {
		px, err := Remove(ivx, ivy, tx, ty)
		if err != nil {
			return res, err
		}
		py, err := Remove(ivy, px, ty, tx)
		if err != nil {
			return res, err
		}
		res.Diagnostics.RemovedX = len(ivx) - len(px)
		res.Diagnostics.RemovedY = len(ivy) - len(py)
		ivx, ivy = px, py
	}

	if opts.Sync {
		sxIvs, syIvs, clamped, err := Synchronize(tx, ty, ivx, ivy)
		if err != nil {
			return res, err
		}
		res.Diagnostics.ClampedMatches = clamped
		ivx, ivy = sxIvs, syIvs
	}

	res.X, res.Y = ivx, ivy

	return res, nil
}

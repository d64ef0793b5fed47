// Package recomb evaluates recombination-line emissivities from
// published analytic fits and interpolation grids (spec sections 4.6 and
// 4.7), and the ionic-abundance quotients derived from them.
//
// Grounded on the teacher's pkg/device: one variant per fit family
// (there, per circuit component; here, per published fit), each a free
// function with its own row type returning the shared Emissivity result;
// there is no common interface. This follows spec section 9's
// "represent each family as a distinct variant... do not flatten".
package recomb

import (
	"math"
	"sort"
)

// bilinear interpolates a value grid over the axes (logX, logY) at query
// point (x, y) in log space, clamping at the grid edges rather than
// extrapolating — the SH95 and Porter grids are dense enough over their
// published range that clamping is the conservative choice, unlike the
// collision-strength spline (spec section 4.1) which is deliberately
// extrapolated.
func bilinear(logX, logY []float64, values [][]float64, x, y float64) float64 {
	lx, ly := math.Log10(x), math.Log10(y)

	ix0, ix1, fx := locate(logX, lx)
	iy0, iy1, fy := locate(logY, ly)

	v00 := values[ix0][iy0]
	v01 := values[ix0][iy1]
	v10 := values[ix1][iy0]
	v11 := values[ix1][iy1]

	v0 := v00*(1-fy) + v01*fy
	v1 := v10*(1-fy) + v11*fy
	return v0*(1-fx) + v1*fx
}

// locate finds the bracketing indices of axis around q and the fractional
// position between them, clamped to [0, len-1] at the ends.
func locate(axis []float64, q float64) (i0, i1 int, frac float64) {
	n := len(axis)
	if n == 1 {
		return 0, 0, 0
	}
	idx := sort.SearchFloat64s(axis, q)
	if idx <= 0 {
		return 0, 1, 0
	}
	if idx >= n {
		return n - 2, n - 1, 1
	}
	i0, i1 = idx-1, idx
	span := axis[i1] - axis[i0]
	if span == 0 {
		return i0, i1, 0
	}
	frac = (q - axis[i0]) / span
	return i0, i1, frac
}

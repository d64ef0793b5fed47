// Package diagnostic inverts an observed line ratio into an electron
// temperature or density by nested bracket refinement (spec section 4.5),
// repeatedly invoking the level-population solver and line-emissivity
// summer.
//
// Grounded on the teacher's pkg/analysis/dc.go (sweep generation over a
// window of the free variable) and pkg/analysis/anlysis.go /
// pkg/analysis/op.go (a bounded iteration count in place of a
// convergence-tolerance parameter): "deterministic cost, no
// convergence-tolerance parameter to mis-tune" is spec section 9's own
// framing of the same design choice op.go makes for its Newton loop.
package diagnostic

import (
	"fmt"
	"math"

	"nebdiag/internal/consts"
	"nebdiag/pkg/atomdata"
	"nebdiag/pkg/emissivity"
	"nebdiag/pkg/population"
)

const (
	gridPoints = 4 // M in spec section 4.5
	passCount  = 9 // fixed depth
	tempWindow = 15000.0
	densWindow = 100000.0
)

// Model bundles one ion's atomic data and the selections defining the
// modeled ratio R(x), the quantity the root finder inverts.
type Model struct {
	Levels     atomdata.Levels
	Omega      *atomdata.OmegaTable
	A          atomdata.Aij
	LevelCount int
	Upper      []emissivity.Pair
	Lower      []emissivity.Pair
}

// ratioAt evaluates R(te, ne) = Sum(Upper)/Sum(Lower) for the model.
func (m *Model) ratioAt(te, ne float64) (float64, error) {
	n, err := population.Solve(te, ne, m.Levels, m.Omega, m.A, m.LevelCount)
	if err != nil {
		return 0, err
	}
	return emissivity.Ratio(n, m.Levels, m.A, m.Upper, m.Lower)
}

// Temperature inverts ratioObs at fixed ne into an electron temperature,
// per spec section 4.5's "temperature mode". Per spec section 7, a
// non-positive ne or ratioObs is a missing-required-input condition: it
// is reported and a sentinel zero is returned.
func Temperature(ratioObs, ne float64, m *Model) (float64, error) {
	if ne <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive Ne=%g", ne)
	}
	if ratioObs <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive observed ratio %g", ratioObs)
	}
	f := func(x float64) (float64, error) {
		if x < consts.MinTemperatureK {
			x = consts.MinTemperatureK
		}
		r, err := m.ratioAt(x, ne)
		if err != nil {
			return 0, err
		}
		return r - ratioObs, nil
	}
	return bracket(consts.MinTemperatureK, tempWindow, f)
}

// Density inverts ratioObs at fixed te into an electron density, per spec
// section 4.5's "density mode".
func Density(ratioObs, te float64, m *Model) (float64, error) {
	if te <= 0 {
		return 0, fmt.Errorf("diagnostic: non-positive Te=%g", te)
	}
	f := func(x float64) (float64, error) {
		if x < consts.MinDensityCM3 {
			x = consts.MinDensityCM3
		}
		r, err := m.ratioAt(te, x)
		if err != nil {
			return 0, err
		}
		return r - ratioObs, nil
	}
	return bracket(0, densWindow, f)
}

// bracket runs the nine-pass nested bracket refinement of spec section
// 4.5 starting from anchor x0 with initial window width, evaluating f at
// gridPoints uniformly spaced points inside [anchor, anchor+window] each
// pass, then shrinking window by a further factor of (gridPoints-1) for
// the next pass.
func bracket(x0, window float64, f func(float64) (float64, error)) (float64, error) {
	anchor := x0
	delta := window / float64(gridPoints-1)

	var lastErr error
	for pass := 0; pass < passCount; pass++ {
		xs := make([]float64, gridPoints)
		fs := make([]float64, gridPoints)
		for m := 0; m < gridPoints; m++ {
			xs[m] = anchor + float64(m)*delta
			v, err := f(xs[m])
			if err != nil {
				lastErr = err
			}
			fs[m] = v
		}

		signChanged := -1
		for m := 1; m < gridPoints; m++ {
			if sign(fs[m]) != sign(fs[0]) {
				signChanged = m
				break
			}
		}

		if signChanged >= 0 {
			anchor = xs[signChanged-1]
		} else {
			// No sign change: anchor at the endpoint with smaller |f|.
			if math.Abs(fs[gridPoints-1]) < math.Abs(fs[0]) {
				anchor = xs[gridPoints-1]
			} else {
				anchor = xs[0]
			}
		}

		delta /= float64(gridPoints - 1)
	}

	if lastErr != nil {
		return 0, fmt.Errorf("diagnostic: %v", lastErr)
	}
	return anchor, nil
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

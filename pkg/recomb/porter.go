package recomb

import (
	"fmt"

	"nebdiag/internal/consts"
	"nebdiag/pkg/atomdata"
)

// PorterHeI interpolates the Porter et al. He I effective recombination
// coefficient for the line selected by lineIndex (e.g. 10 -> 4471.50 A)
// from the published (T,N) grid (spec section 4.7), and returns the line
// emissivity alpha_eff*hc/lambda.
func PorterHeI(te, ne float64, lineIndex int, grids map[int]*atomdata.PorterHeIGrid) (Emissivity, error) {
	if te <= 0 || ne <= 0 {
		return Emissivity{}, fmt.Errorf("recomb: non-positive Te=%g or Ne=%g", te, ne)
	}
	grid, ok := grids[lineIndex]
	if !ok {
		return Emissivity{}, fmt.Errorf("recomb: no He I Porter grid for line index %d", lineIndex)
	}

	alphaEff := bilinear(grid.LogT, grid.LogN, grid.Values, te, ne)
	eps := alphaEff * consts.PlanckH * consts.SpeedC / (grid.Wavelength * 1e-8)
	return Emissivity{Value: eps, Wavelength: grid.Wavelength}, nil
}

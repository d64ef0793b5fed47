package recomb

import (
	"fmt"

	"nebdiag/pkg/atomdata"
)

// HeII evaluates the He II recombination-line emissivity from an
// SH95-style (T,N) grid, the same interpolation Hbeta uses (spec section
// 4.7: "grid interpolation as in C7").
func HeII(te, ne float64, grid *atomdata.SH95Grid) (Emissivity, error) {
	if te <= 0 || ne <= 0 {
		return Emissivity{}, fmt.Errorf("recomb: non-positive Te=%g or Ne=%g", te, ne)
	}
	if grid == nil {
		return Emissivity{}, fmt.Errorf("recomb: missing He II grid")
	}
	v := bilinear(grid.LogT, grid.LogN, grid.Values, te, ne)
	return Emissivity{Value: v, Wavelength: grid.Wavelength}, nil
}

package recomb

import (
	"fmt"

	"nebdiag/internal/consts"
	"nebdiag/pkg/atomdata"
)

// Hbeta evaluates epsilon(Hbeta) at (te, ne) from the SH95 grid, by
// bilinear interpolation in log(Te) and log(Ne) (spec section 4.6). Every
// recombination-line abundance in this package is normalized against this
// value.
func Hbeta(te, ne float64, grid *atomdata.SH95Grid) (Emissivity, error) {
	if te <= 0 || ne <= 0 {
		return Emissivity{}, fmt.Errorf("recomb: non-positive Te=%g or Ne=%g", te, ne)
	}
	if grid == nil {
		return Emissivity{}, fmt.Errorf("recomb: missing Hbeta grid")
	}
	v := bilinear(grid.LogT, grid.LogN, grid.Values, te, ne)
	return Emissivity{Value: v, Wavelength: consts.WavelengthHbeta}, nil
}

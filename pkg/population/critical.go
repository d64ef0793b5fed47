package population

import (
	"math"

	"nebdiag/pkg/atomdata"
	"nebdiag/pkg/collision"
)

// CriticalDensity returns N_crit,j for each level j of el (spec section 6):
// the density at which collisional de-excitation out of j balances
// radiative depopulation of j,
//
//	N_crit,j = sum_{i<j} A_ji / sum_{i!=j} q_ji
//
// A level with a zero radiative rate (e.g. the ground state) but some
// collisional coupling reports N_crit = 0: any density already favors
// collisions. Only a level with zero radiative rate and zero collisional
// coupling at all reports N_crit = +Inf, since no finite density then
// satisfies the ratio.
func CriticalDensity(te float64, el atomdata.Levels, om *atomdata.OmegaTable, a atomdata.Aij) []float64 {
	l := len(el)
	out := make([]float64, l)
	if te <= 0 {
		return out
	}

	evalr := collision.NewEvaluator(om)

	for j := 1; j <= l; j++ {
		var radSum, collSum float64
		for i := 1; i < j; i++ {
			radSum += a.Value(j, i)
		}
		for i := 1; i <= l; i++ {
			if i == j {
				continue
			}
			lower, upper := j, i
			if lower > upper {
				lower, upper = upper, lower
			}
			qDown, qUp := collision.RateCoeff(el, evalr, te, lower, upper)
			if i < j {
				collSum += qDown // j upper, i lower: downward j->i
			} else {
				collSum += qUp // j lower, i upper: upward j->i
			}
		}
		if collSum == 0 {
			out[j-1] = math.Inf(1)
			continue
		}
		out[j-1] = radSum / collSum
	}
	return out
}

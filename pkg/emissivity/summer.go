package emissivity

import (
	"fmt"

	"nebdiag/internal/consts"
	"nebdiag/pkg/atomdata"
)

// Sum returns epsilon = n[j-1]*A[j][i]*hc/lambda_ji summed over pairs,
// per spec section 4.4. Populations n is indexed 0-based for L levels;
// pairs reference 1-based level numbers. A pair naming a level beyond
// len(n) is a "selection references level beyond L" condition (spec
// section 7): it is skipped and reported via the returned error, and the
// remaining pairs still contribute (mirrors "report and return zero" at
// the level of the offending pair, not the whole sum).
func Sum(n []float64, el atomdata.Levels, a atomdata.Aij, pairs []Pair) (float64, error) {
	var total float64
	var err error
	for _, p := range pairs {
		if p.Upper < 1 || p.Lower < 1 || p.Upper > len(n) || p.Lower > len(n) {
			err = fmt.Errorf("emissivity: selection (%d,%d) references level beyond L=%d", p.Lower, p.Upper, len(n))
			continue
		}
		aVal := a.Value(p.Upper, p.Lower)
		if aVal == 0 {
			continue
		}
		deltaE := el[p.Upper-1].Energy - el[p.Lower-1].Energy
		if deltaE <= 0 {
			continue
		}
		lambdaAngstrom := consts.AngstromPerCM / deltaE
		lambdaCM := lambdaAngstrom * 1e-8
		total += n[p.Upper-1] * aVal * consts.PlanckH * consts.SpeedC / lambdaCM
	}
	return total, err
}

// Ratio evaluates R = Sum(upper)/Sum(lower), the modeled line ratio the
// diagnostic root finder inverts (spec section 4.5). A zero denominator
// is itself a "missing required input"-shaped failure; it is reported
// through the returned error and R is returned as 0.
func Ratio(n []float64, el atomdata.Levels, a atomdata.Aij, upper, lower []Pair) (float64, error) {
	num, errU := Sum(n, el, a, upper)
	den, errL := Sum(n, el, a, lower)
	if errU != nil {
		return 0, errU
	}
	if errL != nil {
		return 0, errL
	}
	if den == 0 {
		return 0, fmt.Errorf("emissivity: zero denominator in ratio")
	}
	return num / den, nil
}

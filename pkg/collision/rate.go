package collision

import (
	"math"

	"nebdiag/internal/consts"
	"nebdiag/pkg/atomdata"
)

// RateCoeff returns the downward (qDown, upper->lower) and upward (qUp,
// lower->upper) collisional rate coefficients for the pair (lower<upper)
// at te, per spec section 4.2's q_ji / q_ij formulas. Shared by the rate-
// matrix assembler (pkg/rates) and the critical-density operation
// (pkg/population) so the physics lives in exactly one place.
func RateCoeff(el atomdata.Levels, e *Evaluator, te float64, lower, upper int) (qDown, qUp float64) {
	gLower, gUpper := el[lower-1].Weight(), el[upper-1].Weight()
	deltaE := el[upper-1].Energy - el[lower-1].Energy
	omega := e.Omega(lower, upper, te)

	if e.IRATS() == 0 {
		qDown = consts.ExcitationCoeff * omega / (gUpper * math.Sqrt(te))
	} else {
		qDown = omega * math.Pow(10, float64(e.IRATS()))
	}
	qUp = qDown * (gUpper / gLower) * math.Exp(-deltaE*consts.HCoverK/te)
	return qDown, qUp
}

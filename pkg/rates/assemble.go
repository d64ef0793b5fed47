package rates

import (
	"nebdiag/pkg/atomdata"
	"nebdiag/pkg/collision"
)

// Assemble builds the L x L rate matrix and right-hand side for the
// statistical-equilibrium system at (te, ne) over the first levelCount
// levels of el/om/a, per spec section 4.2, including the conservation-row
// substitution that resolves the matrix's inherent rank deficiency.
//
// Grounded on the teacher's pkg/circuit.Circuit.Stamp: a loop over
// contributing sources (there, devices; here, transition pairs) each
// adding into a shared matrix, followed by a single well-posedness fixup
// (there, none needed; here, the row-1 substitution).
func Assemble(mat *Matrix, te, ne float64, el atomdata.Levels, om *atomdata.OmegaTable, a atomdata.Aij, levelCount int) {
	mat.Clear()
	stampRates(mat, te, ne, el, om, a, levelCount)
	substituteConservationRow(mat, levelCount)
}

// stampRates fills X with the raw collisional/radiative rates, before the
// conservation-row substitution that resolves the system's rank
// deficiency; the right-hand side is left as Clear set it. Row i is the
// balance equation of level i, so the rows add up to the zero vector
// (every column sums to zero). Split out of Assemble so tests can verify
// that invariant of spec section 4.2 directly, before
// substituteConservationRow overwrites row 1.
func stampRates(mat *Matrix, te, ne float64, el atomdata.Levels, om *atomdata.OmegaTable, a atomdata.Aij, levelCount int) {
	evalr := collision.NewEvaluator(om)

	rateOut := make([]float64, levelCount+1) // 1-based accumulator of total rate leaving level i

	for i := 1; i <= levelCount; i++ {
		for j := i + 1; j <= levelCount; j++ {
			qji, qij := collision.RateCoeff(el, evalr, te, i, j)

			aji := a.Value(j, i)

			// X[j][i] holds the rate into j from i: collisional
			// excitation only (no radiative excitation).
			mat.AddElement(j, i, ne*qij)
			// X[i][j] holds the rate into i from j: collisional
			// de-excitation plus radiative decay.
			mat.AddElement(i, j, ne*qji+aji)

			rateOut[i] += ne * qij
			rateOut[j] += ne*qji + aji
		}
	}

	// Diagonal: total rate out of each level, negative sign so that each
	// column sums to zero: X[k][i] always holds rate(i->k), so column i
	// telescopes to sum_k rate(i->k) - rateOut[i] = 0.
	for i := 1; i <= levelCount; i++ {
		mat.AddElement(i, i, -rateOut[i])
	}
}

// substituteConservationRow replaces row 1 with sum(n)=1, per spec
// section 4.2. This is the substitution the source's rank deficiency
// requires; row 1 is chosen by convention.
func substituteConservationRow(mat *Matrix, levelCount int) {
	for j := 1; j <= levelCount; j++ {
		mat.SetElement(1, j, 1)
	}
	mat.SetRHS(1, 1)
	for i := 2; i <= levelCount; i++ {
		mat.SetRHS(i, 0)
	}
}

package collision

import (
	"math"

	"nebdiag/pkg/atomdata"
)

// Evaluator caches one spline per tabulated transition of an OmegaTable so
// that repeated calls at different temperatures (as the diagnostic root
// finder in pkg/diagnostic makes) don't rebuild the second-derivative
// table each time.
type Evaluator struct {
	table   *atomdata.OmegaTable
	splines map[[2]int]*naturalSpline
}

// NewEvaluator builds an Evaluator over table, precomputing one spline per
// tabulated transition.
func NewEvaluator(table *atomdata.OmegaTable) *Evaluator {
	e := &Evaluator{table: table, splines: make(map[[2]int]*naturalSpline, len(table.Transitions))}
	for _, t := range table.Transitions {
		e.splines[[2]int{t.Lower, t.Upper}] = newNaturalSpline(table.Temperatures, t.Strength)
	}
	return e
}

// Omega returns Omega_ij(Te) for the unordered pair (i,j), interpolating
// over log10(Te). Untabulated pairs return 0, per spec section 3.
func (e *Evaluator) Omega(i, j int, te float64) float64 {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	s, ok := e.splines[[2]int{lo, hi}]
	if !ok {
		return 0
	}
	return s.eval(math.Log10(te))
}

// IRATS reports the owning table's collision-rate flag.
func (e *Evaluator) IRATS() int {
	return e.table.IRATS
}

// EffectiveMatrix returns a dense L x L snapshot of interpolated Omega at
// Te, Omega[i-1][j-1] for 1-based i,j — the effective_omega operation of
// spec section 6. L is taken from levelCount.
func EffectiveMatrix(table *atomdata.OmegaTable, te float64, levelCount int) [][]float64 {
	e := NewEvaluator(table)
	m := make([][]float64, levelCount)
	for i := range m {
		m[i] = make([]float64, levelCount)
	}
	for _, t := range table.Transitions {
		if t.Lower > levelCount || t.Upper > levelCount {
			continue
		}
		v := e.Omega(t.Lower, t.Upper, te)
		m[t.Lower-1][t.Upper-1] = v
		m[t.Upper-1][t.Lower-1] = v
	}
	return m
}

// Package population implements the level-population solver (spec section
// 4.3): given (Te, Ne) and per-ion atomic data, it returns the normalized
// populations n_j = N_j/N_ion.
package population

import (
	"fmt"

	"nebdiag/pkg/atomdata"
	"nebdiag/pkg/rates"
)

// Solve returns the normalized level populations for the first levelCount
// levels of el/om/a at (te, ne). Per spec section 7, non-positive te or ne
// is a "missing required input" condition: it reports an error and
// returns a zero-valued slice rather than dividing by zero or calling the
// solver with a meaningless state.
func Solve(te, ne float64, el atomdata.Levels, om *atomdata.OmegaTable, a atomdata.Aij, levelCount int) ([]float64, error) {
	if te <= 0 || ne <= 0 {
		return make([]float64, levelCount), fmt.Errorf("population: non-positive Te=%g or Ne=%g", te, ne)
	}
	if levelCount <= 0 || levelCount > len(el) {
		return make([]float64, levelCount), fmt.Errorf("population: level count %d out of range for %d tabulated levels", levelCount, len(el))
	}

	mat, err := rates.NewMatrix(levelCount)
	if err != nil {
		return make([]float64, levelCount), fmt.Errorf("population: %v", err)
	}
	defer mat.Destroy()

	rates.Assemble(mat, te, ne, el, om, a, levelCount)

	n, err := mat.Solve()
	if err != nil {
		return make([]float64, levelCount), fmt.Errorf("population: %v", err)
	}

	out := make([]float64, levelCount)
	copy(out, n)
	return out, nil
}

// Solver bundles one ion's atomic data so repeated calls (as the root
// finder in pkg/diagnostic makes) don't need to thread the same four
// arguments through every call site.
type Solver struct {
	Levels atomdata.Levels
	Omega  *atomdata.OmegaTable
	A      atomdata.Aij
}

// Populations solves for the first levelCount levels at (te, ne).
func (s *Solver) Populations(te, ne float64, levelCount int) ([]float64, error) {
	return Solve(te, ne, s.Levels, s.Omega, s.A, levelCount)
}

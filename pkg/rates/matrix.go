// Package rates assembles the statistical-equilibrium rate matrix (spec
// section 4.2) and solves it via LU factorization (spec section 4.3).
//
// Matrix wraps github.com/edp1096/sparse exactly the way the teacher's
// pkg/matrix.CircuitMatrix wraps it for circuit nodal-equation systems:
// same stamp/clear/factor/solve lifecycle and 1-based indexing, but sized
// to the atom's level count instead of a circuit's node+branch count, and
// always real-valued (there is no AC/complex analogue for level
// populations).
package rates

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// Matrix is the working system X*n = B of spec section 4.2/4.3, sized
// L x L for L levels.
type Matrix struct {
	Size int
	m    *sparse.Matrix
	rhs  []float64
	sol  []float64
}

// NewMatrix allocates a fresh L x L system. Real-valued; the accessors
// below ignore indices beyond L, since the level count is fixed for the
// lifetime of one evaluation (spec section 3: "working state is owned
// exclusively by one evaluation and released on completion"). Translate
// is on so elements can still be reached after a Solve has reordered the
// matrix, which lets Assemble reuse it.
func NewMatrix(size int) (*Matrix, error) {
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      true,
		ModifiedNodal:  false,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("rates: creating matrix: %v", err)
	}

	return &Matrix{
		Size: size,
		m:    mat,
		rhs:  make([]float64, size+1),
		sol:  make([]float64, size+1),
	}, nil
}

// AddElement adds value to X[i][j] (1-based). Off-diagonal entries
// accumulate contributions from every transition touching level i or j;
// AddElement matches that additive-stamp convention.
func (m *Matrix) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	m.m.GetElement(int64(i), int64(j)).Real += value
}

// SetElement overwrites X[i][j] (1-based), used for the conservation-row
// substitution of spec section 4.2.
func (m *Matrix) SetElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return
	}
	m.m.GetElement(int64(i), int64(j)).Real = value
}

// Element returns the current value of X[i][j] (1-based). Used by tests
// that need to inspect the matrix before a later stage (e.g. the
// conservation-row substitution) overwrites it.
func (m *Matrix) Element(i, j int) float64 {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return 0
	}
	return m.m.GetElement(int64(i), int64(j)).Real
}

// SetRHS overwrites B[i] (1-based).
func (m *Matrix) SetRHS(i int, value float64) {
	if i <= 0 || i > m.Size {
		return
	}
	m.rhs[i] = value
}

// Clear zeroes both the matrix and the right-hand side, so the struct can
// be reused across repeated evaluations without reallocating
// (population.Solve itself allocates a fresh Matrix on every call).
func (m *Matrix) Clear() {
	m.m.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

// Solve LU-factors the current matrix with partial pivoting and back-
// substitutes for the right-hand side, per spec section 4.3.
func (m *Matrix) Solve() ([]float64, error) {
	if err := m.m.Factor(); err != nil {
		return nil, fmt.Errorf("rates: factorization failed: %v", err)
	}
	sol, err := m.m.Solve(m.rhs)
	if err != nil {
		return nil, fmt.Errorf("rates: solve failed: %v", err)
	}
	m.sol = sol
	return sol[1 : m.Size+1], nil
}

// Destroy releases the underlying sparse matrix's native resources.
func (m *Matrix) Destroy() {
	if m.m != nil {
		m.m.Destroy()
	}
}

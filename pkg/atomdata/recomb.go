package atomdata

// SH95Grid is the temperature x density x case x line-pair grid used both
// for the H-beta reference emissivity (C7) and the He II analytic-grid
// family (C8). Temperatures and densities are stored as log10 axes so
// that both consumers can bilinearly interpolate in log space directly.
type SH95Grid struct {
	LogT       []float64 // log10(Te), strictly increasing
	LogN       []float64 // log10(Ne), strictly increasing
	Case       string    // "A" or "B"
	Wavelength float64   // Angstrom, informational
	// Values[iT][iN] is the tabulated emissivity (erg cm^3 s^-1) at
	// (LogT[iT], LogN[iN]).
	Values [][]float64
}

// PPB91Row is one wavelength's fit coefficients from Pequignot, Petitjean
// & Boisson (1991), used for the C III and N III recombination lines.
type PPB91Row struct {
	Wavelength           float64 // Angstrom
	A, B, C, D, F, Branch float64
}

// PPB91Table is the full fit table for one ion (C III or N III).
type PPB91Table []PPB91Row

// CollectionRow is one wavelength's fit row from the Davey/MOCASSIN
// collection, used for C II, N II, O II and Ne II. The functional form is
// the same as PPB91Row; N II and O II additionally require a branching
// ratio drawn from a companion table (BranchTable) rather than the row
// itself.
type CollectionRow struct {
	Wavelength    float64
	A, B, C, D, F float64
}

type CollectionTable struct {
	Rows []CollectionRow
	// Branch maps a wavelength (Angstrom, matched the same way as Rows) to
	// its branching ratio. Nil for ions with no separate branching table
	// (C II).
	Branch map[float64]float64
}

// PorterHeIGrid is the 2-D (T,N) interpolation grid for one He I line,
// selected by the published integer line index (e.g. 10 -> 4471.50 A).
type PorterHeIGrid struct {
	LineIndex  int
	Wavelength float64
	LogT       []float64
	LogN       []float64
	Values     [][]float64 // effective recombination coefficient, cm^3 s^-1
}

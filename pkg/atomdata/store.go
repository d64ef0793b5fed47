package atomdata

import "fmt"

// Store is the contract an atomic-data collaborator must satisfy. It
// mirrors spec section 6's "Consumed contracts" verbatim: one method per
// reader, keyed by ion. A real implementation backs this by FITS tables;
// MemStore backs it by literal fixtures.
type Store interface {
	ReadLevels(ion Ion, levelCount int) (Levels, error)
	ReadOmega(ion Ion) (*OmegaTable, error)
	ReadAij(ion Ion) (Aij, error)

	ReadAeffSH95(ion Ion) (*SH95Grid, error)
	ReadAeffHeIPorter(ion Ion) (map[int]*PorterHeIGrid, error)
	ReadAeffPPB91(ion Ion) (PPB91Table, error)
	ReadAeffCollection(ion Ion, withBranching bool) (*CollectionTable, error)
	ReadAeffHeII(ion Ion) (*SH95Grid, error)
}

// ErrNotFound is returned by a Store when the requested ion has no record
// of the requested kind. Callers implementing spec section 7's "missing
// required input" behavior treat this the same as any other error: report
// and return a sentinel zero.
type ErrNotFound struct {
	Ion  Ion
	Kind string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("atomdata: no %s for %s %d", e.Kind, e.Ion.Element, e.Ion.Stage)
}

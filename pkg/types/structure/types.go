// Package structure defines the data-transfer types for molecular structures:
// atoms, bonds, per-atom stability records, and whole-molecule validation
// results.  These shapes form the contract between the validation engine, the
// HTTP API, the CLI, and preset persistence.
package structure

// Position is a 3D coordinate carried through the engine untouched; the
// validator works on declared connectivity only and never infers bonds from
// geometry.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Atom is a single atom in a molecule under construction.  Identity is the
// integer ID, unique within one molecule; bonds reference atoms by ID, never
// by pointer.
type Atom struct {
	ID      int      `json:"id"`
	Element string   `json:"element"`
	Pos     Position `json:"position"`

	// ValenceElectrons caches the element-table lookup.  The engine treats the
	// table as authoritative and recomputes this field during validation when
	// it is zero or inconsistent.
	ValenceElectrons int `json:"valence_electrons"`

	// FormalCharge is a recomputed output field, not authoritative input.
	FormalCharge int `json:"formal_charge"`
}

// Bond connects two atoms by ID with an integer order.  The pair is unordered
// and the two IDs must differ; multiplicities are expressed via Order, never
// via duplicate bond records.
type Bond struct {
	ID      int `json:"id"`
	Atom1ID int `json:"atom1_id"`
	Atom2ID int `json:"atom2_id"`
	Order   int `json:"order"` // 1, 2 or 3
}

// Touches reports whether the bond is incident to the atom with the given ID.
func (b Bond) Touches(atomID int) bool {
	return b.Atom1ID == atomID || b.Atom2ID == atomID
}

// BondType is the named multiplicity of a bond.
type BondType string

const (
	BondSingle BondType = "single"
	BondDouble BondType = "double"
	BondTriple BondType = "triple"
)

// Order returns the integer bond order for the type, or 0 for an unknown type.
func (t BondType) Order() int {
	switch t {
	case BondSingle:
		return 1
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	default:
		return 0
	}
}

// BondTypeForOrder returns the BondType for an integer order.  The boolean is
// false for orders outside {1,2,3}.
func BondTypeForOrder(order int) (BondType, bool) {
	switch order {
	case 1:
		return BondSingle, true
	case 2:
		return BondDouble, true
	case 3:
		return BondTriple, true
	default:
		return "", false
	}
}

// AtomStability is the per-atom electron bookkeeping derived on every
// validation pass.  It is a pure function of the atom and its incident bonds
// and is never persisted independently.
type AtomStability struct {
	AtomID           int    `json:"atom_id"`
	Element          string `json:"element"`
	CurrentElectrons int    `json:"current_electrons"`
	TargetElectrons  int    `json:"target_electrons"`
	NeedsElectrons   int    `json:"needs_electrons"`
	FormalCharge     int    `json:"formal_charge"`
	IsStable         bool   `json:"is_stable"`
	OctetSatisfied   bool   `json:"octet_satisfied"`
}

// ValidationResult is the aggregate report for one molecule.  AtomStability is
// ordered like the input atoms; each record also carries its AtomID so callers
// are not forced to rely on positional alignment.
type ValidationResult struct {
	IsStable      bool            `json:"is_stable"`
	IsValid       bool            `json:"is_valid"`
	Formula       string          `json:"formula"`
	TotalCharge   int             `json:"total_charge"`
	Warnings      []string        `json:"warnings"`
	Hints         []string        `json:"hints"`
	AtomStability []AtomStability `json:"atom_stability"`
}

// StabilityFor returns the stability record for the given atom ID.  The
// boolean is false when the atom was not part of the validated molecule.
func (r ValidationResult) StabilityFor(atomID int) (AtomStability, bool) {
	for _, s := range r.AtomStability {
		if s.AtomID == atomID {
			return s, true
		}
	}
	return AtomStability{}, false
}

// MoleculeDocument is a complete serializable molecule: the unit stored as a
// preset and exchanged with the CLI and HTTP API.
type MoleculeDocument struct {
	Name  string `json:"name,omitempty"`
	Atoms []Atom `json:"atoms"`
	Bonds []Bond `json:"bonds"`
}

// BondOptions describes the legal bond choices between two elements, used by
// editor UIs to disable illegal bond-type controls before an edit is attempted.
type BondOptions struct {
	Element1     string     `json:"element1"`
	Element2     string     `json:"element2"`
	AllowedTypes []BondType `json:"allowed_types"`
	MaxOrder     int        `json:"max_order"`
}

// ElementInfo is the public view of one element-table record.
type ElementInfo struct {
	Symbol            string     `json:"symbol"`
	ValenceElectrons  int        `json:"valence_electrons"`
	AllowedBondTypes  []BondType `json:"allowed_bond_types"`
	MaxTotalBondOrder int        `json:"max_total_bond_order"`
	Known             bool       `json:"known"`
}

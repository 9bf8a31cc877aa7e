package structure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// water builds O(id=1) with two hydrogens attached by single bonds.
func water() ([]stypes.Atom, []stypes.Bond) {
	atoms := []stypes.Atom{
		{ID: 1, Element: "O"},
		{ID: 2, Element: "H"},
		{ID: 3, Element: "H"},
	}
	bonds := []stypes.Bond{
		{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 1},
		{ID: 2, Atom1ID: 1, Atom2ID: 3, Order: 1},
	}
	return atoms, bonds
}

func TestValidateMoleculeEmpty(t *testing.T) {
	r := ValidateMolecule(nil, nil)
	assert.False(t, r.IsValid)
	assert.False(t, r.IsStable)
	assert.Equal(t, "Empty", r.Formula)
	assert.Equal(t, 0, r.TotalCharge)
	assert.NotNil(t, r.Warnings)
	assert.Empty(t, r.Warnings)
	assert.NotNil(t, r.Hints)
	assert.Empty(t, r.Hints)
	assert.Empty(t, r.AtomStability)
}

func TestValidateMoleculeWater(t *testing.T) {
	atoms, bonds := water()
	r := ValidateMolecule(atoms, bonds)

	assert.True(t, r.IsValid)
	assert.True(t, r.IsStable)
	assert.Equal(t, "H2O", r.Formula)
	assert.Equal(t, 0, r.TotalCharge)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Hints)
	require.Len(t, r.AtomStability, 3)

	o, ok := r.StabilityFor(1)
	require.True(t, ok)
	assert.Equal(t, "O", o.Element)
	assert.Equal(t, 8, o.CurrentElectrons)
	assert.True(t, o.OctetSatisfied)
}

func TestValidateMoleculeStabilityOrderMatchesInput(t *testing.T) {
	atoms, bonds := water()
	r := ValidateMolecule(atoms, bonds)
	for i, a := range atoms {
		assert.Equal(t, a.ID, r.AtomStability[i].AtomID)
	}
}

func TestValidateMoleculeUnstableAtomHint(t *testing.T) {
	// Methyl fragment: carbon with only three hydrogens.
	atoms := []stypes.Atom{
		{ID: 1, Element: "C"},
		{ID: 2, Element: "H"},
		{ID: 3, Element: "H"},
		{ID: 4, Element: "H"},
	}
	bonds := []stypes.Bond{
		{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 1},
		{ID: 2, Atom1ID: 1, Atom2ID: 3, Order: 1},
		{ID: 3, Atom1ID: 1, Atom2ID: 4, Order: 1},
	}

	r := ValidateMolecule(atoms, bonds)
	assert.True(t, r.IsValid)
	assert.False(t, r.IsStable)
	require.Len(t, r.Hints, 1)
	assert.Equal(t, "Carbon needs 1 more electron(s) to complete its octet", r.Hints[0])
}

func TestValidateMoleculeDuetHint(t *testing.T) {
	atoms := []stypes.Atom{{ID: 1, Element: "H"}}
	r := ValidateMolecule(atoms, nil)
	require.Len(t, r.Hints, 1)
	assert.Equal(t, "Hydrogen needs 1 more electron(s) to complete its duet", r.Hints[0])
}

func TestValidateMoleculeIllegalBondOrderWarning(t *testing.T) {
	// H=O is illegal: hydrogen only forms single bonds.  The bond still
	// participates in the electron arithmetic.
	atoms := []stypes.Atom{
		{ID: 1, Element: "O"},
		{ID: 2, Element: "H"},
	}
	bonds := []stypes.Bond{{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 2}}

	r := ValidateMolecule(atoms, bonds)
	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0], "Hydrogen")

	h, ok := r.StabilityFor(2)
	require.True(t, ok)
	assert.Equal(t, 3, h.CurrentElectrons) // 1 valence + order 2, bond not removed
}

func TestValidateMoleculeTotalOrderCapWarning(t *testing.T) {
	// Oxygen with three single bonds exceeds its total-order cap of 2.
	atoms := []stypes.Atom{
		{ID: 1, Element: "O"},
		{ID: 2, Element: "H"},
		{ID: 3, Element: "H"},
		{ID: 4, Element: "H"},
	}
	bonds := []stypes.Bond{
		{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 1},
		{ID: 2, Atom1ID: 1, Atom2ID: 3, Order: 1},
		{ID: 3, Atom1ID: 1, Atom2ID: 4, Order: 1},
	}

	r := ValidateMolecule(atoms, bonds)
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "Oxygen") && strings.Contains(w, "exceeding its maximum of 2") {
			found = true
		}
	}
	assert.True(t, found, "expected a total-order cap warning, got %v", r.Warnings)
	// Total charge: O has +1 here (6-2-3), each H is 0.
	assert.Equal(t, 1, r.TotalCharge)
}

func TestValidateMoleculeDuplicateBondWarning(t *testing.T) {
	atoms := []stypes.Atom{
		{ID: 1, Element: "C"},
		{ID: 2, Element: "C"},
	}
	bonds := []stypes.Bond{
		{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 1},
		{ID: 2, Atom1ID: 2, Atom2ID: 1, Order: 1}, // same unordered pair
	}

	r := ValidateMolecule(atoms, bonds)
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "duplicate bond") {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate-bond warning, got %v", r.Warnings)
}

func TestValidateMoleculeDanglingBondWarning(t *testing.T) {
	atoms := []stypes.Atom{{ID: 1, Element: "C"}}
	bonds := []stypes.Bond{{ID: 7, Atom1ID: 1, Atom2ID: 99, Order: 1}}

	r := ValidateMolecule(atoms, bonds)
	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0], "missing atom")
}

func TestValidateMoleculeOutOfRangeBondOrderWarning(t *testing.T) {
	atoms := []stypes.Atom{
		{ID: 1, Element: "C"},
		{ID: 2, Element: "C"},
	}
	bonds := []stypes.Bond{{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 4}}

	r := ValidateMolecule(atoms, bonds)
	require.NotEmpty(t, r.Warnings)
	assert.Contains(t, r.Warnings[0], "bond order 4")
}

func TestValidateMoleculeNeverMutatesInputs(t *testing.T) {
	atoms, bonds := water()
	atomsCopy := make([]stypes.Atom, len(atoms))
	copy(atomsCopy, atoms)
	bondsCopy := make([]stypes.Bond, len(bonds))
	copy(bondsCopy, bonds)

	_ = ValidateMolecule(atoms, bonds)

	assert.Equal(t, atomsCopy, atoms)
	assert.Equal(t, bondsCopy, bonds)
}

func TestValidateMoleculeMethane(t *testing.T) {
	atoms := []stypes.Atom{
		{ID: 1, Element: "C"},
		{ID: 2, Element: "H"},
		{ID: 3, Element: "H"},
		{ID: 4, Element: "H"},
		{ID: 5, Element: "H"},
	}
	bonds := []stypes.Bond{
		{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 1},
		{ID: 2, Atom1ID: 1, Atom2ID: 3, Order: 1},
		{ID: 3, Atom1ID: 1, Atom2ID: 4, Order: 1},
		{ID: 4, Atom1ID: 1, Atom2ID: 5, Order: 1},
	}

	r := ValidateMolecule(atoms, bonds)
	assert.True(t, r.IsStable)
	assert.Equal(t, "CH4", r.Formula)
	assert.Equal(t, 0, r.TotalCharge)
	assert.Empty(t, r.Warnings)
}

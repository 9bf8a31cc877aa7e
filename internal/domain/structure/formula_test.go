package structure

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

func atomsOf(symbols ...string) []stypes.Atom {
	atoms := make([]stypes.Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = stypes.Atom{ID: i + 1, Element: s}
	}
	return atoms
}

func TestMolecularFormulaEmpty(t *testing.T) {
	assert.Equal(t, "Empty", MolecularFormula(nil))
	assert.Equal(t, "Empty", MolecularFormula([]stypes.Atom{}))
}

func TestMolecularFormulaWater(t *testing.T) {
	assert.Equal(t, "H2O", MolecularFormula(atomsOf("H", "H", "O")))
}

func TestMolecularFormulaSingleOccurrences(t *testing.T) {
	// C first, H second, the rest alphabetical; counts of one are left out.
	assert.Equal(t, "CHNO", MolecularFormula(atomsOf("O", "H", "C", "N")))
}

func TestMolecularFormulaHillOrdering(t *testing.T) {
	assert.Equal(t, "CH4", MolecularFormula(atomsOf("H", "H", "C", "H", "H")))
	assert.Equal(t, "C2H6O", MolecularFormula(atomsOf("C", "C", "O", "H", "H", "H", "H", "H", "H")))
	// No carbon: hydrogen still leads, the rest stay alphabetical.
	assert.Equal(t, "H3N", MolecularFormula(atomsOf("N", "H", "H", "H")))
	assert.Equal(t, "ClNaO", MolecularFormula(atomsOf("Na", "Cl", "O")))
}

func TestMolecularFormulaCaseInsensitive(t *testing.T) {
	assert.Equal(t, "H2O", MolecularFormula(atomsOf("h", "H", "o")))
}

func TestMolecularFormulaUnknownSymbolsRenderedAsGiven(t *testing.T) {
	assert.Equal(t, "Xq2", MolecularFormula(atomsOf("Xq", "xq")))
}

func TestMolecularFormulaPermutationInvariant(t *testing.T) {
	symbols := []string{"C", "C", "H", "H", "H", "H", "O", "N", "Cl"}
	want := MolecularFormula(atomsOf(symbols...))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		rng.Shuffle(len(symbols), func(a, b int) { symbols[a], symbols[b] = symbols[b], symbols[a] })
		assert.Equal(t, want, MolecularFormula(atomsOf(symbols...)))
	}
}

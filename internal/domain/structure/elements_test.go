package structure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

func TestCanonicalSymbol(t *testing.T) {
	assert.Equal(t, "Cl", CanonicalSymbol("cl"))
	assert.Equal(t, "Cl", CanonicalSymbol("CL"))
	assert.Equal(t, "H", CanonicalSymbol("h"))
	assert.Equal(t, "C", CanonicalSymbol(" c "))
	assert.Equal(t, "", CanonicalSymbol(""))
}

func TestValenceElectrons(t *testing.T) {
	cases := map[string]int{
		"H":  1,
		"C":  4,
		"N":  5,
		"O":  6,
		"F":  7,
		"Cl": 7,
		"Br": 7,
		"I":  7,
		"S":  6,
		"P":  5,
		"B":  3,
	}
	for symbol, want := range cases {
		assert.Equal(t, want, ValenceElectrons(symbol), "valence of %s", symbol)
	}
}

func TestValenceElectronsCaseInsensitive(t *testing.T) {
	assert.Equal(t, 7, ValenceElectrons("cl"))
	assert.Equal(t, 6, ValenceElectrons("o"))
	assert.Equal(t, 1, ValenceElectrons("h"))
}

func TestValenceElectronsUnknownDefaultsToFour(t *testing.T) {
	assert.Equal(t, 4, ValenceElectrons("Xq"))
	assert.Equal(t, 4, ValenceElectrons("Zz"))
}

func TestElementName(t *testing.T) {
	assert.Equal(t, "Carbon", ElementName("c"))
	assert.Equal(t, "Chlorine", ElementName("CL"))
	// Unknown symbols fall back to the canonicalized symbol.
	assert.Equal(t, "Xq", ElementName("xq"))
}

func TestKnownElements(t *testing.T) {
	elements := KnownElements()
	assert.Len(t, elements, 23)
	assert.True(t, sort.SliceIsSorted(elements, func(i, j int) bool {
		return elements[i].Symbol < elements[j].Symbol
	}))
	for _, e := range elements {
		assert.True(t, e.Known, "%s must be a known element", e.Symbol)
	}
}

func TestElementInfo(t *testing.T) {
	info := ElementInfo("o")
	assert.Equal(t, "O", info.Symbol)
	assert.Equal(t, 6, info.ValenceElectrons)
	assert.Equal(t, []stypes.BondType{stypes.BondSingle, stypes.BondDouble}, info.AllowedBondTypes)
	assert.Equal(t, 2, info.MaxTotalBondOrder)
	assert.True(t, info.Known)

	unknown := ElementInfo("Xq")
	assert.False(t, unknown.Known)
	assert.Equal(t, 4, unknown.ValenceElectrons)
	assert.Equal(t, []stypes.BondType{stypes.BondSingle}, unknown.AllowedBondTypes)
	assert.Equal(t, 4, unknown.MaxTotalBondOrder)
}

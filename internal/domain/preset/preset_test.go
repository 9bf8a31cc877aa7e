package preset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molcraft/molcraft/pkg/errors"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

func waterDocument() structtypes.MoleculeDocument {
	return structtypes.MoleculeDocument{
		Name: "Water",
		Atoms: []structtypes.Atom{
			{ID: 1, Element: "O"},
			{ID: 2, Element: "H"},
			{ID: 3, Element: "H"},
		},
		Bonds: []structtypes.Bond{
			{ID: 1, Atom1ID: 1, Atom2ID: 2, Order: 1},
			{ID: 2, Atom1ID: 1, Atom2ID: 3, Order: 1},
		},
	}
}

func TestNewPreset(t *testing.T) {
	p, err := New("  water  ", " classic ", waterDocument())
	require.NoError(t, err)

	assert.Equal(t, "water", p.Name)
	assert.Equal(t, "classic", p.Description)
	assert.NoError(t, p.BaseEntity.ID.Validate())
	assert.Equal(t, 1, p.Version)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewPresetRejectsEmptyName(t *testing.T) {
	_, err := New("   ", "", waterDocument())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))
}

func TestValidateRejectsOversizedFields(t *testing.T) {
	doc := waterDocument()

	_, err := New(strings.Repeat("n", 121), "", doc)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))

	_, err = New("ok", strings.Repeat("d", 2001), doc)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))
}

func TestValidateRejectsDuplicateAtomIDs(t *testing.T) {
	doc := waterDocument()
	doc.Atoms[2].ID = doc.Atoms[1].ID

	_, err := New("dupes", "", doc)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))
}

func TestValidateRejectsDanglingBond(t *testing.T) {
	doc := waterDocument()
	doc.Bonds = append(doc.Bonds, structtypes.Bond{ID: 3, Atom1ID: 1, Atom2ID: 99, Order: 1})

	_, err := New("dangling", "", doc)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))
}

func TestValidateRejectsOversizedDocument(t *testing.T) {
	atoms := make([]structtypes.Atom, maxAtomsPerDocument+1)
	for i := range atoms {
		atoms[i] = structtypes.Atom{ID: i + 1, Element: "C"}
	}

	_, err := New("huge", "", structtypes.MoleculeDocument{Atoms: atoms})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))
}

func TestValidateAllowsEmptyDocument(t *testing.T) {
	_, err := New("blank canvas", "", structtypes.MoleculeDocument{})
	assert.NoError(t, err)
}

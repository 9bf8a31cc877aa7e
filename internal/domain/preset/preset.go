// Package preset defines saved molecule documents that users can load back
// into the builder, plus the persistence contract their storage must satisfy.
package preset

import (
	"context"
	"strings"

	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

const (
	maxNameLength        = 120
	maxDescriptionLength = 2000
	maxAtomsPerDocument  = 1000
	maxBondsPerDocument  = 2000
)

// Preset is a named, persisted molecule document.
type Preset struct {
	common.BaseEntity

	Name        string                       `json:"name"`
	Description string                       `json:"description,omitempty"`
	Document    structtypes.MoleculeDocument `json:"document"`
}

// New constructs a Preset with a fresh identity.
func New(name, description string, doc structtypes.MoleculeDocument) (*Preset, error) {
	p := &Preset{
		BaseEntity:  common.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Document:    doc,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate reports the first structural problem with the preset.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrCodePresetInvalid, "preset name must not be empty")
	}
	if len(p.Name) > maxNameLength {
		return errors.New(errors.ErrCodePresetInvalid, "preset name exceeds 120 characters")
	}
	if len(p.Description) > maxDescriptionLength {
		return errors.New(errors.ErrCodePresetInvalid, "preset description exceeds 2000 characters")
	}
	if len(p.Document.Atoms) > maxAtomsPerDocument {
		return errors.New(errors.ErrCodePresetInvalid, "preset document exceeds 1000 atoms")
	}
	if len(p.Document.Bonds) > maxBondsPerDocument {
		return errors.New(errors.ErrCodePresetInvalid, "preset document exceeds 2000 bonds")
	}

	ids := make(map[int]struct{}, len(p.Document.Atoms))
	for _, a := range p.Document.Atoms {
		if _, dup := ids[a.ID]; dup {
			return errors.New(errors.ErrCodePresetInvalid, "preset document contains duplicate atom ids")
		}
		ids[a.ID] = struct{}{}
	}
	for _, b := range p.Document.Bonds {
		if _, ok := ids[b.Atom1ID]; !ok {
			return errors.New(errors.ErrCodePresetInvalid, "preset document bond references a missing atom")
		}
		if _, ok := ids[b.Atom2ID]; !ok {
			return errors.New(errors.ErrCodePresetInvalid, "preset document bond references a missing atom")
		}
	}
	return nil
}

// Repository is the persistence contract for presets.
type Repository interface {
	Create(ctx context.Context, p *Preset) error
	GetByID(ctx context.Context, id common.ID) (*Preset, error)
	GetByName(ctx context.Context, name string) (*Preset, error)
	List(ctx context.Context, page common.Pagination) ([]*Preset, int64, error)
	Update(ctx context.Context, p *Preset) error
	Delete(ctx context.Context, id common.ID) error
}

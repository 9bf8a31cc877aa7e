package structure

import (
	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// moleculeCatalog maps canonical formulas (as produced by MolecularFormula)
// to known display names.  Keys must be generator-canonical: carbon first,
// hydrogen second, the rest alphabetical, hence "H3N" for ammonia and "HCl"
// for hydrogen chloride.
var moleculeCatalog = map[string][]string{
	"H2O":     {"Water"},
	"H2O2":    {"Hydrogen peroxide"},
	"CH4":     {"Methane"},
	"C2H6":    {"Ethane"},
	"C2H4":    {"Ethylene", "Ethene"},
	"C2H2":    {"Acetylene", "Ethyne"},
	"CH4O":    {"Methanol"},
	"CH2O":    {"Formaldehyde"},
	"C6H12O6": {"Glucose"},
	"H3N":     {"Ammonia"},
	"CO":      {"Carbon monoxide"},
	"CO2":     {"Carbon dioxide"},
	"HCl":     {"Hydrogen chloride"},
	"H2":      {"Hydrogen gas"},
	"O2":      {"Oxygen gas"},
	"O3":      {"Ozone"},
	"N2":      {"Nitrogen gas"},
	"CHN":     {"Hydrogen cyanide"},
	"H2S":     {"Hydrogen sulfide"},
	"CH4N2O":  {"Urea"},
}

// RecognizeMolecule matches the atom composition against the catalog of known
// molecules and returns the display names for the formula, or nil when the
// formula is not in the catalog.  Recognition is by composition alone: the
// bond list is accepted for interface symmetry with ValidateMolecule but not
// consulted, so a bag of 1 C and 4 H atoms with no bonds declared is still
// recognized as methane.
func RecognizeMolecule(atoms []stypes.Atom, _ []stypes.Bond) []string {
	names, ok := moleculeCatalog[MolecularFormula(atoms)]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

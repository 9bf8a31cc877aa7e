// Package structure implements the molecular structure validation engine:
// electron bookkeeping (valence, formal charge), octet/duet stability, bond
// legality between element pairs, canonical molecular formulas, and
// recognition against a small catalog of known molecules.
//
// Every exported function is a pure function of its arguments: no I/O, no
// shared mutable state, no caching.  Molecules in the editor are small (tens
// of atoms), so each call recomputes from scratch.  The element and bond
// tables below are read-only constants, so concurrent callers need no locking.
package structure

import (
	"sort"
	"strings"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// elementRecord groups everything the rule system knows about one element.
// Keeping valence, allowed bond types, and the bond-order cap in a single
// record avoids scattering the same symbol dispatch across functions.
type elementRecord struct {
	name              string
	valenceElectrons  int
	allowedBondTypes  []stypes.BondType
	maxTotalBondOrder int
}

var (
	singleOnly = []stypes.BondType{stypes.BondSingle}
	upToDouble = []stypes.BondType{stypes.BondSingle, stypes.BondDouble}
	upToTriple = []stypes.BondType{stypes.BondSingle, stypes.BondDouble, stypes.BondTriple}
)

// defaultElement is applied to any symbol missing from the table: a permissive
// tetravalent placeholder restricted to single bonds.  Unknown symbols are
// never an error.
var defaultElement = elementRecord{
	name:              "",
	valenceElectrons:  4,
	allowedBondTypes:  singleOnly,
	maxTotalBondOrder: 4,
}

// elementTable covers the common main-group elements.  Valence electron
// counts follow the periodic group number.  Bond-type permissions and the
// per-atom total-order cap implement the editor's rule system, not general
// chemistry: hypervalency beyond the cap is out of scope.
var elementTable = map[string]elementRecord{
	"H":  {"Hydrogen", 1, singleOnly, 1},
	"He": {"Helium", 2, singleOnly, 4},
	"Li": {"Lithium", 1, singleOnly, 4},
	"Be": {"Beryllium", 2, singleOnly, 4},
	"B":  {"Boron", 3, singleOnly, 3},
	"C":  {"Carbon", 4, upToTriple, 4},
	"N":  {"Nitrogen", 5, upToTriple, 4},
	"O":  {"Oxygen", 6, upToDouble, 2},
	"F":  {"Fluorine", 7, singleOnly, 1},
	"Ne": {"Neon", 8, singleOnly, 4},
	"Na": {"Sodium", 1, singleOnly, 4},
	"Mg": {"Magnesium", 2, singleOnly, 4},
	"Al": {"Aluminium", 3, singleOnly, 4},
	"Si": {"Silicon", 4, upToDouble, 4},
	"P":  {"Phosphorus", 5, upToDouble, 4},
	"S":  {"Sulfur", 6, upToDouble, 4},
	"Cl": {"Chlorine", 7, singleOnly, 1},
	"Ar": {"Argon", 8, singleOnly, 4},
	"K":  {"Potassium", 1, singleOnly, 4},
	"Ca": {"Calcium", 2, singleOnly, 4},
	"Br": {"Bromine", 7, singleOnly, 1},
	"I":  {"Iodine", 7, singleOnly, 1},
	"Xe": {"Xenon", 8, singleOnly, 4},
}

// CanonicalSymbol normalizes an element symbol to standard capitalization:
// first letter upper, rest lower ("cl" → "Cl").  All lookups and all rendered
// output go through this form.
func CanonicalSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return symbol
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// lookup returns the element record for a symbol, falling back to
// defaultElement for symbols not in the table.
func lookup(symbol string) (elementRecord, bool) {
	rec, ok := elementTable[CanonicalSymbol(symbol)]
	if !ok {
		return defaultElement, false
	}
	return rec, true
}

// ValenceElectrons returns the number of outer-shell electrons for the
// element, case-insensitive.  Unknown symbols get the permissive default of 4.
func ValenceElectrons(symbol string) int {
	rec, _ := lookup(symbol)
	return rec.valenceElectrons
}

// ElementName returns the display name for an element symbol; for unknown
// symbols the canonicalized symbol itself is returned so that user-facing
// hints always have something to say.
func ElementName(symbol string) string {
	rec, ok := lookup(symbol)
	if !ok || rec.name == "" {
		return CanonicalSymbol(symbol)
	}
	return rec.name
}

// KnownElements returns the full table as public records, sorted by symbol.
func KnownElements() []stypes.ElementInfo {
	out := make([]stypes.ElementInfo, 0, len(elementTable))
	for symbol := range elementTable {
		out = append(out, ElementInfo(symbol))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// ElementInfo exposes the full table record for one symbol, including whether
// the symbol was actually known or served by the default record.
func ElementInfo(symbol string) stypes.ElementInfo {
	rec, known := lookup(symbol)
	allowed := make([]stypes.BondType, len(rec.allowedBondTypes))
	copy(allowed, rec.allowedBondTypes)
	return stypes.ElementInfo{
		Symbol:            CanonicalSymbol(symbol),
		ValenceElectrons:  rec.valenceElectrons,
		AllowedBondTypes:  allowed,
		MaxTotalBondOrder: rec.maxTotalBondOrder,
		Known:             known,
	}
}

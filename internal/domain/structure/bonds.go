package structure

import (
	"fmt"
	"strings"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// AllowedBondTypes returns the ordered set of bond types an element can form,
// case-insensitive.  Unmatched symbols are restricted to single bonds.
func AllowedBondTypes(symbol string) []stypes.BondType {
	rec, _ := lookup(symbol)
	out := make([]stypes.BondType, len(rec.allowedBondTypes))
	copy(out, rec.allowedBondTypes)
	return out
}

// IsBondTypeAllowed reports whether both elements permit the given bond type.
// The check is symmetric in its element arguments.
func IsBondTypeAllowed(e1, e2 string, t stypes.BondType) bool {
	return bondTypeAllowedFor(e1, t) && bondTypeAllowedFor(e2, t)
}

func bondTypeAllowedFor(symbol string, t stypes.BondType) bool {
	rec, _ := lookup(symbol)
	for _, allowed := range rec.allowedBondTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// MaxBondOrder returns the highest bond order both elements permit: 3 if both
// allow triple bonds, else 2 if both allow double bonds, else 1.
func MaxBondOrder(e1, e2 string) int {
	if IsBondTypeAllowed(e1, e2, stypes.BondTriple) {
		return 3
	}
	if IsBondTypeAllowed(e1, e2, stypes.BondDouble) {
		return 2
	}
	return 1
}

// MaxTotalBondOrder returns the cap on the sum of bond orders incident to one
// atom of the element.  This is a cap on total order, not bond count: an
// oxygen with one double bond is at its cap of 2.
func MaxTotalBondOrder(symbol string) int {
	rec, _ := lookup(symbol)
	return rec.maxTotalBondOrder
}

// BondOptions bundles the legal choices between two elements for UI control
// gating.
func BondOptions(e1, e2 string) stypes.BondOptions {
	allowed := make([]stypes.BondType, 0, 3)
	for _, t := range []stypes.BondType{stypes.BondSingle, stypes.BondDouble, stypes.BondTriple} {
		if IsBondTypeAllowed(e1, e2, t) {
			allowed = append(allowed, t)
		}
	}
	return stypes.BondOptions{
		Element1:     CanonicalSymbol(e1),
		Element2:     CanonicalSymbol(e2),
		AllowedTypes: allowed,
		MaxOrder:     MaxBondOrder(e1, e2),
	}
}

// ValidateBondOrder checks one bond order against the pairwise rules.  On
// rejection the message names the offending element and lists its allowed
// bond types, so it can be surfaced directly as a user-facing warning.
// Orders outside {1,2,3} are rejected with a dedicated message.
func ValidateBondOrder(e1, e2 string, order int) (bool, string) {
	t, ok := stypes.BondTypeForOrder(order)
	if !ok {
		return false, fmt.Sprintf("bond order %d is not supported; orders must be 1 (single), 2 (double) or 3 (triple)", order)
	}
	for _, symbol := range []string{e1, e2} {
		if !bondTypeAllowedFor(symbol, t) {
			return false, fmt.Sprintf("%s cannot form a %s bond; allowed bond types for %s: %s",
				ElementName(symbol), t, CanonicalSymbol(symbol), formatBondTypes(AllowedBondTypes(symbol)))
		}
	}
	return true, ""
}

func formatBondTypes(types []stypes.BondType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

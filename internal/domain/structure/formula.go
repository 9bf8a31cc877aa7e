package structure

import (
	"sort"
	"strconv"
	"strings"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// EmptyFormula is the literal rendered for a molecule with no atoms.
const EmptyFormula = "Empty"

// MolecularFormula reduces an atom collection to its canonical textual
// formula following the Hill system: carbon first, hydrogen second, remaining
// symbols in alphabetical order, with counts rendered only when greater than
// one.  The function is total: it never fails, and unknown symbols are
// rendered as given (canonicalized capitalization).
func MolecularFormula(atoms []stypes.Atom) string {
	if len(atoms) == 0 {
		return EmptyFormula
	}

	counts := make(map[string]int, len(atoms))
	for _, a := range atoms {
		counts[CanonicalSymbol(a.Element)]++
	}

	rest := make([]string, 0, len(counts))
	for symbol := range counts {
		if symbol != "C" && symbol != "H" {
			rest = append(rest, symbol)
		}
	}
	sort.Strings(rest)

	ordered := make([]string, 0, len(counts))
	if counts["C"] > 0 {
		ordered = append(ordered, "C")
	}
	if counts["H"] > 0 {
		ordered = append(ordered, "H")
	}
	ordered = append(ordered, rest...)

	var sb strings.Builder
	for _, symbol := range ordered {
		sb.WriteString(symbol)
		if n := counts[symbol]; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

package structure

import (
	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// Electron targets for the two-valued stability rule: hydrogen is stable with
// a duet, everything else with an octet.  This is deliberately not a general
// shell calculation.
const (
	duetTarget  = 2
	octetTarget = 8
)

// TargetElectrons returns the stability target for an element: 2 for
// hydrogen, 8 for everything else.
func TargetElectrons(symbol string) int {
	if CanonicalSymbol(symbol) == "H" {
		return duetTarget
	}
	return octetTarget
}

// sumIncidentOrder totals the bond orders of all bonds touching the atom.
func sumIncidentOrder(atomID int, bonds []stypes.Bond) int {
	sum := 0
	for _, b := range bonds {
		if b.Touches(atomID) {
			sum += b.Order
		}
	}
	return sum
}

// CheckOctetRule computes the per-atom stability record from the atom and its
// incident bonds.  The electron count here is valence + the sum of incident
// bond orders: each bond order contributes one shared electron toward the
// octet/duet.  An atom at or above its target is reported stable; exceeding
// the target carries no separate signal (over-bonding is caught by the
// max-total-bond-order warning during whole-molecule validation).
func CheckOctetRule(atom stypes.Atom, bonds []stypes.Bond) stypes.AtomStability {
	valence := ValenceElectrons(atom.Element)
	sumOrder := sumIncidentOrder(atom.ID, bonds)
	target := TargetElectrons(atom.Element)

	current := valence + sumOrder
	needs := target - current
	if needs < 0 {
		needs = 0
	}
	satisfied := current >= target

	return stypes.AtomStability{
		AtomID:           atom.ID,
		Element:          CanonicalSymbol(atom.Element),
		CurrentElectrons: current,
		TargetElectrons:  target,
		NeedsElectrons:   needs,
		FormalCharge:     CalculateFormalCharge(atom, bonds),
		IsStable:         satisfied,
		OctetSatisfied:   satisfied,
	}
}

// CalculateFormalCharge computes the Lewis-structure formal charge for the
// atom.  Unlike CheckOctetRule it counts two bonding electrons per unit of
// bond order, and it infers the lone-pair electron count as whatever is
// missing to reach the octet/duet from bonds alone, clamped at zero.  The two
// computations use different electron counts on purpose; unifying them would
// change the numeric outputs the rule system is defined by.
func CalculateFormalCharge(atom stypes.Atom, bonds []stypes.Bond) int {
	valence := ValenceElectrons(atom.Element)
	sumOrder := sumIncidentOrder(atom.ID, bonds)
	target := TargetElectrons(atom.Element)

	bondingElectrons := 2 * sumOrder
	nonbonding := target - bondingElectrons
	if nonbonding < 0 {
		nonbonding = 0
	}
	return valence - nonbonding - sumOrder
}

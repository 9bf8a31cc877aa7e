package structure

import (
	"fmt"

	stypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// ValidateMolecule runs the full rule system over a molecule's declared
// connectivity and produces the aggregate validation report.  It never
// mutates its inputs and never fails: malformed bonds, unknown elements, and
// chemically implausible structures all degrade to warnings and hints inside
// the result.
//
// IsValid is about having content (a molecule with no atoms is the explicit
// terminal case); chemical plausibility is reported separately via IsStable
// and the warning list.  Illegal bonds stay in the electron arithmetic: the
// engine reports them but never removes or corrects them on the caller's
// behalf.
func ValidateMolecule(atoms []stypes.Atom, bonds []stypes.Bond) stypes.ValidationResult {
	if len(atoms) == 0 {
		return stypes.ValidationResult{
			IsStable:      false,
			IsValid:       false,
			Formula:       EmptyFormula,
			TotalCharge:   0,
			Warnings:      []string{},
			Hints:         []string{},
			AtomStability: []stypes.AtomStability{},
		}
	}

	warnings := []string{}
	hints := []string{}

	stability := make([]stypes.AtomStability, 0, len(atoms))
	allStable := true
	totalCharge := 0
	for _, atom := range atoms {
		s := CheckOctetRule(atom, bonds)
		stability = append(stability, s)
		totalCharge += s.FormalCharge
		if !s.IsStable {
			allStable = false
		}
		if s.NeedsElectrons > 0 {
			hints = append(hints, stabilityHint(s))
		}
	}

	warnings = append(warnings, bondWarnings(atoms, bonds)...)
	warnings = append(warnings, totalOrderWarnings(atoms, bonds)...)

	return stypes.ValidationResult{
		IsStable:      allStable,
		IsValid:       true,
		Formula:       MolecularFormula(atoms),
		TotalCharge:   totalCharge,
		Warnings:      warnings,
		Hints:         hints,
		AtomStability: stability,
	}
}

// stabilityHint renders one actionable line for an electron-deficient atom.
func stabilityHint(s stypes.AtomStability) string {
	shell := "octet"
	if s.TargetElectrons == duetTarget {
		shell = "duet"
	}
	return fmt.Sprintf("%s needs %d more electron(s) to complete its %s",
		ElementName(s.Element), s.NeedsElectrons, shell)
}

// bondWarnings checks each bond for dangling atom references, duplicate
// unordered pairs, and orders illegal for the endpoint elements.
func bondWarnings(atoms []stypes.Atom, bonds []stypes.Bond) []string {
	byID := make(map[int]stypes.Atom, len(atoms))
	for _, a := range atoms {
		byID[a.ID] = a
	}

	warnings := []string{}
	seen := make(map[[2]int]bool, len(bonds))
	for _, b := range bonds {
		a1, ok1 := byID[b.Atom1ID]
		a2, ok2 := byID[b.Atom2ID]
		if !ok1 || !ok2 {
			warnings = append(warnings, fmt.Sprintf("bond %d references a missing atom (%d-%d)", b.ID, b.Atom1ID, b.Atom2ID))
			continue
		}
		if b.Atom1ID == b.Atom2ID {
			warnings = append(warnings, fmt.Sprintf("bond %d connects atom %d to itself", b.ID, b.Atom1ID))
			continue
		}

		pair := [2]int{b.Atom1ID, b.Atom2ID}
		if pair[0] > pair[1] {
			pair[0], pair[1] = pair[1], pair[0]
		}
		if seen[pair] {
			warnings = append(warnings, fmt.Sprintf("duplicate bond between atoms %d and %d; use the bond order to express multiple bonds", pair[0], pair[1]))
		}
		seen[pair] = true

		if ok, msg := ValidateBondOrder(a1.Element, a2.Element, b.Order); !ok {
			warnings = append(warnings, fmt.Sprintf("bond %d: %s", b.ID, msg))
		}
	}
	return warnings
}

// totalOrderWarnings flags atoms whose summed incident bond orders exceed the
// element's cap.
func totalOrderWarnings(atoms []stypes.Atom, bonds []stypes.Bond) []string {
	warnings := []string{}
	for _, a := range atoms {
		sum := sumIncidentOrder(a.ID, bonds)
		if limit := MaxTotalBondOrder(a.Element); sum > limit {
			warnings = append(warnings, fmt.Sprintf("%s (atom %d) has total bond order %d, exceeding its maximum of %d",
				ElementName(a.Element), a.ID, sum, limit))
		}
	}
	return warnings
}

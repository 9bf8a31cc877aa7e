// Package kafka publishes and consumes molecule validation events on the
// molcraft.validations topic.
package kafka

import (
	"time"

	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// DefaultTopic is the topic validation events are published to unless
// configuration overrides it.
const DefaultTopic = "molcraft.validations"

// ValidationEvent is the record emitted after each molecule validation.
// Downstream consumers aggregate these for usage analytics.
type ValidationEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`

	Formula     string   `json:"formula"`
	AtomCount   int      `json:"atom_count"`
	BondCount   int      `json:"bond_count"`
	IsStable    bool     `json:"is_stable"`
	IsValid     bool     `json:"is_valid"`
	TotalCharge int      `json:"total_charge"`
	Matches     []string `json:"matches,omitempty"`
}

// NewValidationEvent builds an event from a validation result.
func NewValidationEvent(id string, result structtypes.ValidationResult, atomCount, bondCount int, matches []string) ValidationEvent {
	return ValidationEvent{
		EventID:     id,
		OccurredAt:  time.Now().UTC(),
		Formula:     result.Formula,
		AtomCount:   atomCount,
		BondCount:   bondCount,
		IsStable:    result.IsStable,
		IsValid:     result.IsValid,
		TotalCharge: result.TotalCharge,
		Matches:     matches,
	}
}

// Package builder is the application service behind the molecule builder: it
// runs the validation engine, manages saved presets, and emits validation
// events for analytics.
package builder

import (
	"context"
	"time"

	"github.com/molcraft/molcraft/internal/domain/preset"
	"github.com/molcraft/molcraft/internal/domain/structure"
	"github.com/molcraft/molcraft/internal/infrastructure/database/redis"
	"github.com/molcraft/molcraft/internal/infrastructure/messaging/kafka"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/prometheus"
	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

const maxPayloadAtoms = 1000

// EventPublisher is the slice of the Kafka producer the service needs.
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.ValidationEvent) error
}

// Service orchestrates validation, recognition and preset management.
// The engine itself is pure; everything stateful lives behind the injected
// dependencies, all of which except the repository may be nil.
type Service struct {
	presets   preset.Repository
	cache     redis.Cache
	publisher EventPublisher
	metrics   *prometheus.Metrics
	logger    logging.Logger
	cacheTTL  time.Duration
}

// Option customises a Service.
type Option func(*Service)

// WithCache enables cache-aside preset loading.
func WithCache(c redis.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithPublisher enables validation event publishing.
func WithPublisher(p EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithMetrics enables operational metrics.
func WithMetrics(m *prometheus.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService constructs the builder service.  repo may be nil for read-only
// deployments (the CLI) that never touch presets.
func NewService(repo preset.Repository, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		presets:  repo,
		logger:   log.Named("builder"),
		cacheTTL: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidationReport bundles the engine verdict with recognition matches.
type ValidationReport struct {
	Result  structtypes.ValidationResult `json:"result"`
	Matches []string                     `json:"matches,omitempty"`
}

// Validate runs the engine over a molecule document, records metrics and
// publishes a validation event.  Engine warnings are results, not errors;
// only an oversized payload is rejected.
func (s *Service) Validate(ctx context.Context, doc structtypes.MoleculeDocument) (ValidationReport, error) {
	if len(doc.Atoms) > maxPayloadAtoms {
		return ValidationReport{}, errors.New(errors.ErrCodeStructureInvalidPayload,
			"molecule exceeds 1000 atoms")
	}

	start := time.Now()
	result := structure.ValidateMolecule(doc.Atoms, doc.Bonds)
	matches := structure.RecognizeMolecule(doc.Atoms, doc.Bonds)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.ObserveValidation(result.IsStable, elapsed)
		s.metrics.ObserveRecognition(len(matches) > 0)
	}

	s.logger.Debug("validated molecule",
		logging.String("formula", result.Formula),
		logging.Int("atoms", len(doc.Atoms)),
		logging.Bool("stable", result.IsStable),
		logging.Duration("elapsed", elapsed),
	)

	if s.publisher != nil {
		event := kafka.NewValidationEvent(string(common.NewID()), result,
			len(doc.Atoms), len(doc.Bonds), matches)
		err := s.publisher.Publish(ctx, event)
		if s.metrics != nil {
			s.metrics.ObserveEventPublish(err)
		}
		if err != nil {
			// Analytics must never fail a validation.
			s.logger.Warn("failed to publish validation event", logging.Err(err))
		}
	}

	return ValidationReport{Result: result, Matches: matches}, nil
}

// Recognize returns the known-molecule names matching the document's formula.
func (s *Service) Recognize(ctx context.Context, doc structtypes.MoleculeDocument) []string {
	matches := structure.RecognizeMolecule(doc.Atoms, doc.Bonds)
	if s.metrics != nil {
		s.metrics.ObserveRecognition(len(matches) > 0)
	}
	return matches
}

// Formula returns the canonical molecular formula for the document.
func (s *Service) Formula(doc structtypes.MoleculeDocument) string {
	return structure.MolecularFormula(doc.Atoms)
}

// BondOptions reports the legal bond choices between two elements.
func (s *Service) BondOptions(e1, e2 string) structtypes.BondOptions {
	return structure.BondOptions(e1, e2)
}

// Elements returns the full element table.
func (s *Service) Elements() []structtypes.ElementInfo {
	return structure.KnownElements()
}

// Element returns the table record for one symbol.  Unknown symbols map to
// ErrCodeElementUnknown so the API can answer 404 while the engine itself
// stays permissive.
func (s *Service) Element(symbol string) (structtypes.ElementInfo, error) {
	info := structure.ElementInfo(symbol)
	if !info.Known {
		return structtypes.ElementInfo{}, errors.New(errors.ErrCodeElementUnknown,
			"element not in the periodic table")
	}
	return info, nil
}

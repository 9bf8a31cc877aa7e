package builder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/molcraft/molcraft/internal/domain/preset"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

func presetCacheKey(id common.ID) string {
	return fmt.Sprintf("preset:%s", id)
}

// SavePreset validates and persists a new preset.
func (s *Service) SavePreset(ctx context.Context, name, description string, doc structtypes.MoleculeDocument) (*preset.Preset, error) {
	if s.presets == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "preset storage is not configured")
	}

	p, err := preset.New(name, description, doc)
	if err != nil {
		return nil, err
	}
	if err := s.presets.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("preset created",
		logging.String("preset_id", string(p.ID)),
		logging.String("name", p.Name),
	)
	return p, nil
}

// LoadPreset fetches a preset by ID, serving repeated loads from the cache.
func (s *Service) LoadPreset(ctx context.Context, id common.ID) (*preset.Preset, error) {
	if s.presets == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "preset storage is not configured")
	}
	if err := id.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid preset id")
	}

	if s.cache == nil {
		return s.presets.GetByID(ctx, id)
	}

	var p preset.Preset
	hit := true
	err := s.cache.GetOrSet(ctx, presetCacheKey(id), &p, s.cacheTTL,
		func(ctx context.Context) (interface{}, error) {
			hit = false
			return s.presets.GetByID(ctx, id)
		})
	if s.metrics != nil && err == nil {
		s.metrics.ObserveCache(hit)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPresetByName fetches a preset by its unique name, bypassing the cache.
func (s *Service) LoadPresetByName(ctx context.Context, name string) (*preset.Preset, error) {
	if s.presets == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "preset storage is not configured")
	}
	return s.presets.GetByName(ctx, name)
}

// ListPresets returns one page of presets plus the total count.
func (s *Service) ListPresets(ctx context.Context, page common.Pagination) ([]*preset.Preset, int64, error) {
	if s.presets == nil {
		return nil, 0, errors.New(errors.ErrCodeServiceUnavailable, "preset storage is not configured")
	}
	if err := page.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid pagination")
	}
	return s.presets.List(ctx, page)
}

// UpdatePreset rewrites a preset's content and invalidates its cache entry.
func (s *Service) UpdatePreset(ctx context.Context, id common.ID, name, description string, doc structtypes.MoleculeDocument) (*preset.Preset, error) {
	if s.presets == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "preset storage is not configured")
	}

	p, err := s.presets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = strings.TrimSpace(description)
	p.Document = doc
	p.UpdatedAt = time.Now().UTC()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.presets.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidatePreset(ctx, id)
	return p, nil
}

// DeletePreset removes a preset and invalidates its cache entry.
func (s *Service) DeletePreset(ctx context.Context, id common.ID) error {
	if s.presets == nil {
		return errors.New(errors.ErrCodeServiceUnavailable, "preset storage is not configured")
	}
	if err := s.presets.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePreset(ctx, id)
	s.logger.Info("preset deleted", logging.String("preset_id", string(id)))
	return nil
}

func (s *Service) invalidatePreset(ctx context.Context, id common.ID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, presetCacheKey(id)); err != nil {
		s.logger.Warn("failed to invalidate preset cache",
			logging.String("preset_id", string(id)), logging.Err(err))
	}
}

// Package repositories contains the PostgreSQL implementations of the domain
// persistence contracts.
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/molcraft/molcraft/internal/domain/preset"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

const pgUniqueViolation = "23505"

// PresetRepository is the PostgreSQL implementation of preset.Repository.
// The molecule document is stored as a JSONB column.
type PresetRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPresetRepository constructs a ready-to-use PresetRepository.
func NewPresetRepository(pool *pgxpool.Pool, log logging.Logger) *PresetRepository {
	return &PresetRepository{pool: pool, logger: log.Named("preset_repo")}
}

var _ preset.Repository = (*PresetRepository)(nil)

// Create inserts a new preset.  A name collision maps to
// ErrCodePresetAlreadyExists.
func (r *PresetRepository) Create(ctx context.Context, p *preset.Preset) error {
	doc, err := json.Marshal(p.Document)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode preset document")
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO presets (id, name, description, document, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, doc, p.CreatedAt, p.UpdatedAt, p.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errors.New(errors.ErrCodePresetAlreadyExists,
				"a preset with this name already exists")
		}
		r.logger.Error("insert failed", logging.Err(err))
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert preset")
	}
	return nil
}

// GetByID fetches a preset by its identifier.
func (r *PresetRepository) GetByID(ctx context.Context, id common.ID) (*preset.Preset, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, document, created_at, updated_at, version
		FROM presets WHERE id = $1`, id)
	return r.scanPreset(row)
}

// GetByName fetches a preset by its unique name.
func (r *PresetRepository) GetByName(ctx context.Context, name string) (*preset.Preset, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, description, document, created_at, updated_at, version
		FROM presets WHERE name = $1`, name)
	return r.scanPreset(row)
}

// List returns a page of presets ordered by name, plus the total count.
func (r *PresetRepository) List(ctx context.Context, page common.Pagination) ([]*preset.Preset, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid pagination")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM presets`).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to count presets")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, document, created_at, updated_at, version
		FROM presets ORDER BY name LIMIT $1 OFFSET $2`,
		page.PageSize, page.Offset(),
	)
	if err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list presets")
	}
	defer rows.Close()

	out := make([]*preset.Preset, 0, page.PageSize)
	for rows.Next() {
		p, err := r.scanPreset(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to read preset rows")
	}
	return out, total, nil
}

// Update rewrites a preset under optimistic locking; a stale version maps to
// ErrCodeConflict.
func (r *PresetRepository) Update(ctx context.Context, p *preset.Preset) error {
	doc, err := json.Marshal(p.Document)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode preset document")
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE presets
		SET name = $2, description = $3, document = $4, updated_at = $5, version = version + 1
		WHERE id = $1 AND version = $6`,
		p.ID, p.Name, p.Description, doc, p.UpdatedAt, p.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errors.New(errors.ErrCodePresetAlreadyExists,
				"a preset with this name already exists")
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update preset")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodeConflict, "preset was modified concurrently or does not exist")
	}
	p.Version++
	return nil
}

// Delete removes a preset.  Deleting an absent preset maps to
// ErrCodePresetNotFound.
func (r *PresetRepository) Delete(ctx context.Context, id common.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM presets WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete preset")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodePresetNotFound, "preset not found")
	}
	return nil
}

func (r *PresetRepository) scanPreset(row pgx.Row) (*preset.Preset, error) {
	var (
		p   preset.Preset
		doc []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &doc, &p.CreatedAt, &p.UpdatedAt, &p.Version)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(errors.ErrCodePresetNotFound, "preset not found")
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan preset row")
	}

	var document structtypes.MoleculeDocument
	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &document); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSerialization, "failed to decode preset document")
		}
	}
	p.Document = document
	return &p, nil
}

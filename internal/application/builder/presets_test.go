package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
)

func TestSaveAndLoadPreset(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	saved, err := svc.SavePreset(ctx, "water", "classic", waterDoc())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	loaded, err := svc.LoadPreset(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "water", loaded.Name)
	assert.Len(t, loaded.Document.Atoms, 3)

	byName, err := svc.LoadPresetByName(ctx, "water")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byName.ID)
}

func TestSavePresetDuplicateName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SavePreset(ctx, "water", "", waterDoc())
	require.NoError(t, err)

	_, err = svc.SavePreset(ctx, "water", "", waterDoc())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetAlreadyExists))
}

func TestSavePresetInvalidDocument(t *testing.T) {
	svc := newTestService()

	doc := waterDoc()
	doc.Atoms[1].ID = doc.Atoms[0].ID

	_, err := svc.SavePreset(context.Background(), "broken", "", doc)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePresetInvalid))
}

func TestLoadPresetRejectsMalformedID(t *testing.T) {
	svc := newTestService()

	_, err := svc.LoadPreset(context.Background(), common.ID("not-a-uuid"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))
}

func TestLoadPresetNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.LoadPreset(context.Background(), common.NewID())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListPresets(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SavePreset(ctx, "water", "", waterDoc())
	require.NoError(t, err)
	_, err = svc.SavePreset(ctx, "more water", "", waterDoc())
	require.NoError(t, err)

	presets, total, err := svc.ListPresets(ctx, common.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, presets, 2)

	_, _, err = svc.ListPresets(ctx, common.Pagination{Page: 0, PageSize: 10})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))
}

func TestUpdatePreset(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	saved, err := svc.SavePreset(ctx, "water", "", waterDoc())
	require.NoError(t, err)

	updated, err := svc.UpdatePreset(ctx, saved.ID, "heavy water", "renamed", waterDoc())
	require.NoError(t, err)
	assert.Equal(t, "heavy water", updated.Name)
	assert.Greater(t, updated.Version, saved.Version)

	reloaded, err := svc.LoadPreset(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "heavy water", reloaded.Name)
}

func TestDeletePreset(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	saved, err := svc.SavePreset(ctx, "water", "", waterDoc())
	require.NoError(t, err)

	require.NoError(t, svc.DeletePreset(ctx, saved.ID))

	_, err = svc.LoadPreset(ctx, saved.ID)
	assert.True(t, errors.IsNotFound(err))

	err = svc.DeletePreset(ctx, saved.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestPresetOperationsWithoutStorage(t *testing.T) {
	svc := NewService(nil, logging.NewNopLogger())
	ctx := context.Background()

	_, err := svc.SavePreset(ctx, "water", "", waterDoc())
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))

	_, err = svc.LoadPreset(ctx, common.NewID())
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))

	_, _, err = svc.ListPresets(ctx, common.Pagination{Page: 1, PageSize: 10})
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))

	err = svc.DeletePreset(ctx, common.NewID())
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molcraft/molcraft/internal/application/builder"
	"github.com/molcraft/molcraft/internal/domain/preset"
	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/logging"
	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
)

type stubRepo struct {
	presets map[common.ID]*preset.Preset
	names   map[string]common.ID
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		presets: make(map[common.ID]*preset.Preset),
		names:   make(map[string]common.ID),
	}
}

func (r *stubRepo) Create(_ context.Context, p *preset.Preset) error {
	if _, exists := r.names[p.Name]; exists {
		return errors.New(errors.ErrCodePresetAlreadyExists, "a preset with this name already exists")
	}
	r.presets[p.ID] = p
	r.names[p.Name] = p.ID
	return nil
}

func (r *stubRepo) GetByID(_ context.Context, id common.ID) (*preset.Preset, error) {
	if p, ok := r.presets[id]; ok {
		return p, nil
	}
	return nil, errors.New(errors.ErrCodePresetNotFound, "preset not found")
}

func (r *stubRepo) GetByName(ctx context.Context, name string) (*preset.Preset, error) {
	if id, ok := r.names[name]; ok {
		return r.GetByID(ctx, id)
	}
	return nil, errors.New(errors.ErrCodePresetNotFound, "preset not found")
}

func (r *stubRepo) List(_ context.Context, _ common.Pagination) ([]*preset.Preset, int64, error) {
	out := make([]*preset.Preset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepo) Update(_ context.Context, p *preset.Preset) error {
	if _, ok := r.presets[p.ID]; !ok {
		return errors.New(errors.ErrCodePresetNotFound, "preset not found")
	}
	r.presets[p.ID] = p
	return nil
}

func (r *stubRepo) Delete(_ context.Context, id common.ID) error {
	p, ok := r.presets[id]
	if !ok {
		return errors.New(errors.ErrCodePresetNotFound, "preset not found")
	}
	delete(r.names, p.Name)
	delete(r.presets, id)
	return nil
}

func newPresetRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := builder.NewService(newStubRepo(), logging.NewNopLogger())

	r := gin.New()
	api := r.Group("/api/v1")
	NewPresetHandler(svc).Register(api)
	return r
}

func presetPayload(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"description": "test preset",
		"document":    waterPayload(),
	}
}

func createPreset(t *testing.T, r *gin.Engine, name string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/presets", presetPayload(name))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.ID)
	return resp.Data.ID
}

func TestPresetCreateAndGet(t *testing.T) {
	r := newPresetRouter(t)
	id := createPreset(t, r, "water")

	w := doJSON(t, r, http.MethodGet, "/api/v1/presets/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"water"`)
}

func TestPresetCreateDuplicateName(t *testing.T) {
	r := newPresetRouter(t)
	createPreset(t, r, "water")

	w := doJSON(t, r, http.MethodPost, "/api/v1/presets", presetPayload("water"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "PRESET_002")
}

func TestPresetCreateInvalidDocument(t *testing.T) {
	r := newPresetRouter(t)

	payload := presetPayload("broken")
	payload["document"] = map[string]interface{}{
		"atoms": []map[string]interface{}{
			{"id": 1, "element": "O"},
			{"id": 1, "element": "H"},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/presets", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPresetGetNotFound(t *testing.T) {
	r := newPresetRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/presets/"+string(common.NewID()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPresetGetMalformedID(t *testing.T) {
	r := newPresetRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/presets/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPresetList(t *testing.T) {
	r := newPresetRouter(t)
	createPreset(t, r, "water")
	createPreset(t, r, "methane")

	w := doJSON(t, r, http.MethodGet, "/api/v1/presets?page=1&page_size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
}

func TestPresetUpdate(t *testing.T) {
	r := newPresetRouter(t)
	id := createPreset(t, r, "water")

	w := doJSON(t, r, http.MethodPut, "/api/v1/presets/"+id, presetPayload("heavy water"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"heavy water"`)
}

func TestPresetDelete(t *testing.T) {
	r := newPresetRouter(t)
	id := createPreset(t, r, "water")

	w := doJSON(t, r, http.MethodDelete, "/api/v1/presets/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/presets/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/molcraft/molcraft/internal/application/builder"
	"github.com/molcraft/molcraft/internal/domain/preset"
	"github.com/molcraft/molcraft/pkg/types/common"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// PresetHandler serves the saved-molecule CRUD endpoints.
type PresetHandler struct {
	svc *builder.Service
}

// NewPresetHandler constructs a PresetHandler.
func NewPresetHandler(svc *builder.Service) *PresetHandler {
	return &PresetHandler{svc: svc}
}

// Register mounts the preset routes on the given group.
func (h *PresetHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/presets", h.Create)
	rg.GET("/presets", h.List)
	rg.GET("/presets/:id", h.Get)
	rg.PUT("/presets/:id", h.Update)
	rg.DELETE("/presets/:id", h.Delete)
}

type presetRequest struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Document    structtypes.MoleculeDocument `json:"document"`
}

// Create stores a new preset.
func (h *PresetHandler) Create(c *gin.Context) {
	var req presetRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.SavePreset(c.Request.Context(), req.Name, req.Description, req.Document)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, p)
}

// List returns one page of presets.
func (h *PresetHandler) List(c *gin.Context) {
	page := parsePagination(c)

	presets, total, err := h.svc.ListPresets(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	if presets == nil {
		presets = []*preset.Preset{}
	}

	page.Total = total
	c.JSON(http.StatusOK, common.NewPaginatedResponse(presets, page))
}

// Get loads one preset by ID.
func (h *PresetHandler) Get(c *gin.Context) {
	p, err := h.svc.LoadPreset(c.Request.Context(), common.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, p)
}

// Update rewrites a preset's name, description and document.
func (h *PresetHandler) Update(c *gin.Context) {
	var req presetRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.svc.UpdatePreset(c.Request.Context(), common.ID(c.Param("id")),
		req.Name, req.Description, req.Document)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, p)
}

// Delete removes a preset.
func (h *PresetHandler) Delete(c *gin.Context) {
	if err := h.svc.DeletePreset(c.Request.Context(), common.ID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

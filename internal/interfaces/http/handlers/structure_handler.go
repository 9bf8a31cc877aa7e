package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/molcraft/molcraft/internal/application/builder"
	"github.com/molcraft/molcraft/pkg/errors"
	structtypes "github.com/molcraft/molcraft/pkg/types/structure"
)

// StructureHandler serves the validation, recognition and rule-lookup
// endpoints.
type StructureHandler struct {
	svc *builder.Service
}

// NewStructureHandler constructs a StructureHandler.
func NewStructureHandler(svc *builder.Service) *StructureHandler {
	return &StructureHandler{svc: svc}
}

// Register mounts the structure routes on the given group.
func (h *StructureHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/structure/validate", h.Validate)
	rg.POST("/structure/recognize", h.Recognize)
	rg.GET("/structure/bond-options", h.BondOptions)
	rg.GET("/elements", h.Elements)
	rg.GET("/elements/:symbol", h.Element)
}

// Validate runs the full engine over the posted molecule document.
func (h *StructureHandler) Validate(c *gin.Context) {
	var doc structtypes.MoleculeDocument
	if !bindJSON(c, &doc) {
		return
	}

	report, err := h.svc.Validate(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, report)
}

type recognizeResponse struct {
	Formula string   `json:"formula"`
	Matches []string `json:"matches"`
}

// Recognize returns the catalog names matching the posted molecule.
func (h *StructureHandler) Recognize(c *gin.Context) {
	var doc structtypes.MoleculeDocument
	if !bindJSON(c, &doc) {
		return
	}

	matches := h.svc.Recognize(c.Request.Context(), doc)
	if matches == nil {
		matches = []string{}
	}
	ok(c, recognizeResponse{Formula: h.svc.Formula(doc), Matches: matches})
}

// BondOptions reports the legal bond choices between the two elements named
// in the query string.
func (h *StructureHandler) BondOptions(c *gin.Context) {
	e1 := c.Query("element1")
	e2 := c.Query("element2")
	if e1 == "" || e2 == "" {
		respondError(c, errors.New(errors.ErrCodeBadRequest,
			"query parameters element1 and element2 are required"))
		return
	}
	ok(c, h.svc.BondOptions(e1, e2))
}

// Elements returns the full element table.
func (h *StructureHandler) Elements(c *gin.Context) {
	ok(c, h.svc.Elements())
}

// Element returns the table record for one symbol.
func (h *StructureHandler) Element(c *gin.Context) {
	info, err := h.svc.Element(c.Param("symbol"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, info)
}

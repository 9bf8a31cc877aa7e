// Package handlers implements the HTTP API endpoints.  Every response uses
// the common.APIResponse envelope; error codes map to HTTP statuses through
// the pkg/errors tables.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/molcraft/molcraft/pkg/errors"
	"github.com/molcraft/molcraft/pkg/types/common"
)

func respond[T any](c *gin.Context, status int, data T) {
	c.JSON(status, common.NewSuccessResponse(data))
}

func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := errors.DefaultMessageForCode(code)
	if errors.IsClientError(code) {
		// Client errors carry their real message; server errors stay opaque.
		message = err.Error()
	}

	c.AbortWithStatusJSON(status, common.NewErrorResponse(string(code), message, ""))
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		respondError(c, errors.Wrap(err, errors.ErrCodeStructureInvalidPayload,
			"request body is not valid JSON"))
		return false
	}
	return true
}

func parsePagination(c *gin.Context) common.Pagination {
	page := 1
	pageSize := 20

	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.Query("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 500 {
			pageSize = ps
		}
	}
	return common.Pagination{Page: page, PageSize: pageSize}
}

func ok[T any](c *gin.Context, data T) { respond(c, http.StatusOK, data) }

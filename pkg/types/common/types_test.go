package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.NoError(t, id.Validate())
	assert.NotEqual(t, id, NewID())
}

func TestIDValidate(t *testing.T) {
	assert.Error(t, ID("").Validate())
	assert.Error(t, ID("not-a-uuid").Validate())
}

func TestPaginationValidate(t *testing.T) {
	assert.NoError(t, Pagination{Page: 1, PageSize: 20}.Validate())
	assert.Error(t, Pagination{Page: 0, PageSize: 20}.Validate())
	assert.Error(t, Pagination{Page: 1, PageSize: 0}.Validate())
	assert.Error(t, Pagination{Page: 1, PageSize: 501}.Validate())
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestResponses(t *testing.T) {
	ok := NewSuccessResponse("payload")
	assert.True(t, ok.Success)
	assert.Equal(t, "payload", ok.Data)
	assert.Nil(t, ok.Error)

	bad := NewErrorResponse("PRESET_001", "preset not found", "name=xenonite")
	assert.False(t, bad.Success)
	assert.Equal(t, "PRESET_001", bad.Error.Code)
	assert.Equal(t, "name=xenonite", bad.Error.Detail)
}

package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedHTTPError().StatusCode)
	assert.Equal(t, "Forbidden", NewForbiddenHTTPError().Error())

	e := NewHTTPErrorWithStatus(110004, "Project not found", 0)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.Equal(t, 110004, e.Code)
}

func TestValidationErrorCollector(t *testing.T) {
	c := NewValidationErrorCollector()
	assert.False(t, c.HasError())

	c.Add(NewValidationError(400, "name", "is required")).
		Add(NewValidationError(400, "end_date", "must not be before start_date", "must be a date"))

	assert.True(t, c.HasError())
	assert.Len(t, c.Errors(), 2)
	assert.Equal(t, "name: is required, end_date: must not be before start_date, must be a date", c.Error())
}

func TestPermissionErrorCollector(t *testing.T) {
	c := NewPermissionErrorCollector().
		Add(NewPermissionError(403, "deleteProjects", "missing capability"))

	assert.True(t, c.HasError())
	assert.Equal(t, "deleteProjects: missing capability", c.Error())
}

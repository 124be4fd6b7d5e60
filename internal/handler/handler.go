package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/edustack/edustack-backend/internal/response"
)

// parseID reads and parses the :id route param. On malformed input it writes
// a 400 response and returns false.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	return parseIDParam(c, "id")
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

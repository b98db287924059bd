package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskmate-api/internal/errors"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// 400 "Invalid <entity> ID" and returns false.
func parseIDParam(c *gin.Context, name, entity string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+entity+" ID")
		return 0, false
	}
	return id, true
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fanimal/internal/shared/authorization"
	"fanimal/internal/shared/constants"
)

// actorFromContext reads the authenticated user's identity set by the
// auth middleware.
func actorFromContext(c *gin.Context) (uint, authorization.UserRole) {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	role := authorization.UserRole(c.GetString(constants.ContextKeyUserRole))
	return id, role
}

// parseIDParam parses a positive numeric URL parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

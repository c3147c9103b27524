package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// companyID reads the authenticated company from the request context. The
// auth middleware guarantees it is set on protected routes.
func companyID(c *gin.Context) uint {
	if value, ok := c.Get("company_id"); ok {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}

func userID(c *gin.Context) uint {
	if value, ok := c.Get("user_id"); ok {
		if id, ok := value.(uint); ok {
			return id
		}
	}
	return 0
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/constants"
)

// CurrentUser stores the configured user id in the request context.
// Authentication is out of scope; the acting user comes from configuration
// so handlers have a consistent identity for reactions and assignments.
func CurrentUser(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint64)
	return id, ok
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/okr-tracker-api/internal/apperrors"
)

// respondError renders a taxonomy error with its mapped status code.
// Anything else becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), gin.H{"error": appErr})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
		"code":    apperrors.CodeStoreFailure,
		"message": "internal error",
	}})
}

// parseID parses a numeric path parameter, responding 400 on garbage.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    apperrors.CodeValidation,
			"message": "invalid " + name + " parameter",
		}})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, responding 400 with the binding error.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    apperrors.CodeValidation,
			"message": err.Error(),
		}})
		return false
	}
	return true
}

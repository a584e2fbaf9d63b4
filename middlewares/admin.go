package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates the fixture, night and result publishing routes
// to admin users. It assumes TokenAuthMiddleware already ran.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, _ := c.Get("isAdmin")
		if adminFlag, ok := isAdmin.(bool); ok && adminFlag {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/pkg/utils"
)

// ServiceKeyMiddleware guards the API with a single shared key passed
// in X-Service-Key. An empty configured key disables the check, which
// keeps local development friction-free.
func ServiceKeyMiddleware(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-Service-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			utils.RespondError(c, http.StatusUnauthorized, "Service key missing or invalid")
			c.Abort()
			return
		}

		c.Next()
	}
}

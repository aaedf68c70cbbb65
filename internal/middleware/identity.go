// internal/middleware/identity.go
package middleware

import "github.com/gin-gonic/gin"

// Identity propagates the caller-asserted X-User-ID header into the
// request context. There is no authentication in this system; the header
// stands in for a session the way the original mockup hardcoded the
// signed-in member.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

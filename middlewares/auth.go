package middlewares

import (
	"net/http"
	"strings"

	"github.com/NebiyouChanie/sapore/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates admin-only routes. The session token is accepted
// either as a Bearer header or as the "session" cookie set at sign-in.
// The wrapped handler never runs without a valid admin session.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if cookie, err := c.Cookie("session"); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}

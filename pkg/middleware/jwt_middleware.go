package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"voyager/pkg/memcache"
	"voyager/pkg/utils"
)

func JWTAuthMiddleware(revoked memcache.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Token has been logged out")
			c.Abort()
			return
		}

		// Pass identity to the handlers; token kept for logout.
		c.Set("user_id", claims.UserID)
		c.Set("token", tokenString)
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom/api/auth"
	"newsroom/logger"
	"newsroom/models"
)

// AuthMiddleware verifies the request JWT and stores the uid and role in
// the gin context for handlers.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		uid, role, err := jwtManager.Parse(token)
		if err != nil {
			logger.Log.Warnf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set("uid", uid)
		c.Set("role", role)

		c.Next()
	}
}

// AdminOnly rejects authenticated requests whose role is not admin. It
// must run after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin {
			logger.Log.Warnf("access denied: user %s has role %s, want admin", c.GetString("uid"), role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden_insufficient_permissions"})
			return
		}
		c.Next()
	}
}

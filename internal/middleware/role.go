package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/pkg/jwt"
	"hoodbook/internal/pkg/response"
)

const RoleAdmin = "admin"

// RequireRole ensures that the authenticated caller has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if role != requiredRole {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// AdminOnly is JWTAuth followed by RequireRole(RoleAdmin).
func AdminOnly(jwtService *jwt.Service) []gin.HandlerFunc {
	return []gin.HandlerFunc{JWTAuth(jwtService), RequireRole(RoleAdmin)}
}

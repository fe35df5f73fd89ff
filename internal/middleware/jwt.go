package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/pkg/jwt"
	"hoodbook/internal/pkg/response"
)

// JWTAuth validates the admin session token and stores its subject and role
// in the context. Browsers cannot set headers on websocket upgrades, so the
// token may also come from the "token" query parameter.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				logAuthFailure(c, http.StatusUnauthorized, "invalid_auth_format")
				response.Abort(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
				return
			}
			token = strings.TrimSpace(parts[1])
		}

		if token == "" {
			logAuthFailure(c, http.StatusUnauthorized, "missing_auth")
			response.Abort(c, http.StatusUnauthorized, "AUTH_MISSING", "admin token is required")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			logAuthFailure(c, http.StatusUnauthorized, "invalid_token")
			response.Abort(c, http.StatusUnauthorized, "AUTH_INVALID", "invalid or expired token")
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func logAuthFailure(c *gin.Context, status int, reason string) {
	log.Printf("auth_failed status=%d reason=%s path=%s client_ip=%s request_id=%s",
		status, reason, c.Request.URL.Path, c.ClientIP(), requestID(c))
}

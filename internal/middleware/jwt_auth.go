package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/service"
)

const ContextUserKey = "auth_user"

// JWTAuth requires a valid bearer token on the request. The parsed claims
// are stored under ContextUserKey for downstream handlers.
func JWTAuth(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "missing authorization header",
			})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authorization header must be a bearer token",
			})
			return
		}

		claims, err := authSvc.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "invalid or expired token",
				"error":   err.Error(),
			})
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// NoAuth is the pass-through used when authentication is disabled.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
)

// Context keys set by AuthRequired.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthRequired returns a Gin middleware function that validates bearer tokens
// signed with secret and stores the caller's id and role in the context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "server misconfigured"})
			return
		}

		claims, err := parseAccessToken(tokenStr, []byte(secret))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		if claims.Role != "" {
			c.Set(ContextRole, claims.Role)
		}
		c.Next()
	}
}

// RequireRole rejects callers whose token role is not one of roles.
// It must run after AuthRequired.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "insufficient permissions"})
	}
}

// UserID returns the authenticated user's id, or 0 outside AuthRequired.
func UserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// Role returns the authenticated user's role, or "" outside AuthRequired.
func Role(c *gin.Context) string {
	return c.GetString(ContextRole)
}

// RoleAdmin is the role allowed through admin-only routes.
const RoleAdmin = "admin"

// IsAdmin reports whether the authenticated user holds RoleAdmin.
func IsAdmin(c *gin.Context) bool {
	return Role(c) == RoleAdmin
}

package middleware

import (
	"net/http"

	"guesthub/internal/domain"
	"guesthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through when the authenticated role is one
// of allowed.
func RequireRoles(allowed ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("role")
		if !exists {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		role, _ := raw.(string)
		for _, r := range allowed {
			if domain.UserRole(role) == r {
				c.Next()
				return
			}
		}

		response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
	}
}

// BookingAdmins guards destructive booking operations.
func BookingAdmins() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleManagement)
}

package authz

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/domain"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/shared/response"
)

// Authorize gates a route on the policy. It expects the auth middleware to
// have placed the principal fields in the gin context.
func Authorize(p Policy, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := PrincipalFromContext(c)
		if principal.ID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := p.Allow(principal, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				resource+":"+action)
			c.Abort()
			return
		}

		c.Next()
	}
}

// PrincipalFromContext rebuilds the authenticated principal from the keys set
// by middleware.AuthMiddleware.
func PrincipalFromContext(c *gin.Context) domain.Principal {
	return domain.Principal{
		ID:    c.GetString("user_id"),
		Email: c.GetString("email"),
		Role:  c.GetString("role"),
	}
}

package line

import (
	"github.com/gin-gonic/gin"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/authz"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, policy authz.Policy) {
	lines := r.Group("/production/lines")
	lines.Use(middleware.AuthMiddleware())
	{
		lines.GET("/all", authz.Authorize(policy, authz.ResourceLine, authz.ActionRead), h.GetAllActive)
		lines.POST("", authz.Authorize(policy, authz.ResourceLine, authz.ActionCreate), h.Create)
		lines.PUT("/:id", authz.Authorize(policy, authz.ResourceLine, authz.ActionUpdate), h.Update)
	}
}
